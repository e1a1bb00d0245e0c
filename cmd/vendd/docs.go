package main

// General API documentation for swaggo. Run `swag init -g cmd/vendd/docs.go`
// to regenerate the docs package.
//
// @title           vendd API
// @version         1.0
// @description     HTTP API for the event-driven vending machine fleet daemon.
//
// @contact.name   vendd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
