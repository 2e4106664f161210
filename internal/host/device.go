package host

import (
	"os"
	"runtime"
)

// Device describes the compute target selected for inference.
type Device struct {
	// Name is cuda, metal or cpu.
	Name string
	// GPULayers is how many layers to offload; zero keeps everything on CPU.
	GPULayers int
	// Threads used for CPU-side work.
	Threads int
}

// allGPULayers asks the backend to offload every layer it can.
const allGPULayers = 999

// DetectDevice probes the environment for accelerated hardware. This is an
// environment query only; it never fails, falling back to CPU.
func DetectDevice() Device {
	threads := runtime.NumCPU()
	if hasCUDA() {
		return Device{Name: "cuda", GPULayers: allGPULayers, Threads: threads}
	}
	if runtime.GOOS == "darwin" {
		return Device{Name: "metal", GPULayers: allGPULayers, Threads: threads}
	}
	return Device{Name: "cpu", Threads: threads}
}

func hasCUDA() bool {
	if v, ok := os.LookupEnv("CUDA_VISIBLE_DEVICES"); ok {
		return v != "" && v != "-1"
	}
	if _, err := os.Stat("/dev/nvidia0"); err == nil {
		return true
	}
	if _, err := os.Stat("/proc/driver/nvidia/version"); err == nil {
		return true
	}
	return false
}
