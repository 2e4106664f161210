package host

// Kind identifies the inference mode a model loaded in.
type Kind string

const (
	// KindCausal generates continuation tokens following a prompt.
	KindCausal Kind = "causal"
	// KindSeq2Seq maps an entire input sequence to an output sequence.
	KindSeq2Seq Kind = "seq2seq"
)

// Loader is one strategy for opening a model file. Strategies are tried in
// order by Initialize; the first success decides the Host's Kind.
type Loader interface {
	Kind() Kind
	Load(path string) (Session, error)
}

// DefaultLoaders returns the standard strategy order: causal first, then
// seq2seq.
func DefaultLoaders(rt Runtime, params ModelParams) []Loader {
	return []Loader{
		causalLoader{rt: rt, params: params},
		seq2seqLoader{rt: rt, params: params},
	}
}

type causalLoader struct {
	rt     Runtime
	params ModelParams
}

func (l causalLoader) Kind() Kind { return KindCausal }

func (l causalLoader) Load(path string) (Session, error) {
	return l.rt.LoadCausal(path, l.params)
}

type seq2seqLoader struct {
	rt     Runtime
	params ModelParams
}

func (l seq2seqLoader) Kind() Kind { return KindSeq2Seq }

func (l seq2seqLoader) Load(path string) (Session, error) {
	return l.rt.LoadSeq2Seq(path, l.params)
}
