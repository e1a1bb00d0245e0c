// Package docs holds the generated OpenAPI document. Code generated by
// swag init; edit the annotations in cmd/vendd/docs.go and regenerate
// instead of editing this file.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/events": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Publish a sale or refill event",
                "parameters": [
                    {
                        "description": "Event to publish",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.PublishEventRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PublishEventResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/machines": {
            "get": {
                "produces": ["application/json"],
                "summary": "List the fleet",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.MachinesResponse"}}
                }
            }
        },
        "/machines/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get one machine",
                "parameters": [
                    {"type": "string", "description": "Machine id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.Machine"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "summary": "Fleet and broker status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.BrokerStats": {
            "type": "object",
            "properties": {
                "depth_drops": {"type": "integer"},
                "events_delivered": {"type": "integer"},
                "events_published": {"type": "integer"},
                "events_unrouted": {"type": "integer"},
                "subscriptions": {"type": "integer"}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 404},
                "error": {"type": "string", "example": "machine not found: 999"}
            }
        },
        "types.Machine": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "001"},
                "stock_level": {"type": "integer", "example": 7}
            }
        },
        "types.MachinesResponse": {
            "type": "object",
            "properties": {
                "machines": {"type": "array", "items": {"$ref": "#/definitions/types.Machine"}}
            }
        },
        "types.PublishEventRequest": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "example": "sale"},
                "machine_id": {"type": "string", "example": "001"},
                "quantity": {"type": "integer", "example": 3}
            }
        },
        "types.PublishEventResponse": {
            "type": "object",
            "properties": {
                "machine": {"$ref": "#/definitions/types.Machine"}
            }
        },
        "types.StatusResponse": {
            "type": "object",
            "properties": {
                "broker": {"$ref": "#/definitions/types.BrokerStats"},
                "low_stock_count": {"type": "integer"},
                "low_stock_threshold": {"type": "integer"},
                "machine_count": {"type": "integer"},
                "machines": {"type": "array", "items": {"$ref": "#/definitions/types.Machine"}},
                "server_time_unix": {"type": "integer"},
                "uptime_seconds": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "vendd API",
	Description:      "HTTP API for the event-driven vending machine fleet daemon.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
