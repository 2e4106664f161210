package main

// General API documentation for swaggo. Regenerate with
// `swag init -g cmd/aihostd/docs.go`.
//
// @title           aihostd API
// @version         1.0
// @description     OpenAI-compatible HTTP API for a locally hosted language model.
//
// @contact.name   aihostd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
