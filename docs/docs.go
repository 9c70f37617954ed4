// Package docs registers the OpenAPI document served at /swagger/*any.
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
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.HealthReport"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/service.HealthReport"}}
                }
            }
        },
        "/api/v1/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create an account",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/v1/signin": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in and receive a token",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/v1/content": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "List own content",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.listContentResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "The type is inferred from the link unless given explicitly.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Save a link",
                "parameters": [
                    {"description": "Content", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AddContentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.addContentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/v1/content/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Delete own content",
                "parameters": [
                    {"type": "string", "description": "Content id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/v1/brain/share": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "share=true returns the (possibly existing) hash, share=false removes it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["brain"],
                "summary": "Enable or disable the public share link",
                "parameters": [
                    {"description": "Share flag", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ShareRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.shareResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/v1/brain/{shareLink}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["brain"],
                "summary": "Public read-only view of a shared collection",
                "parameters": [
                    {"type": "string", "description": "Share hash", "name": "shareLink", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SharedBrain"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        },
        "/api/v1/brain/{shareLink}/live": {
            "get": {
                "description": "Sends {\"type\":\"brain\",\"data\":{...}} immediately and then every interval.",
                "tags": ["brain"],
                "summary": "Live view of a shared collection (WebSocket)",
                "parameters": [
                    {"type": "string", "description": "Share hash", "name": "shareLink", "in": "path", "required": true},
                    {"type": "string", "description": "Go duration, e.g. 2s (max 60s)", "name": "interval", "in": "query"},
                    {"type": "integer", "description": "Interval in milliseconds", "name": "interval_ms", "in": "query"}
                ],
                "responses": {
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.messageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.AddContentRequest": {
            "type": "object",
            "required": ["link"],
            "properties": {
                "link": {"type": "string", "example": "https://youtu.be/dQw4w9WgXcQ"},
                "title": {"type": "string", "example": "Talk to revisit"},
                "type": {"type": "string", "example": "youtube"}
            }
        },
        "handlers.ShareRequest": {
            "type": "object",
            "required": ["share"],
            "properties": {"share": {"type": "boolean", "example": true}}
        },
        "handlers.addContentResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "content": {"$ref": "#/definitions/models.Content"}
            }
        },
        "handlers.authCredentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "example": "pw123"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "handlers.listContentResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"$ref": "#/definitions/models.Content"}}
            }
        },
        "handlers.messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "content added"}}
        },
        "handlers.shareResponse": {
            "type": "object",
            "properties": {"hash": {"type": "string", "example": "aZ3kP9qLx2"}}
        },
        "handlers.tokenResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "models.Content": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "integer"},
                "link": {"type": "string"},
                "type": {"type": "string"},
                "title": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"}
            }
        },
        "models.SharedBrain": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "content": {"type": "array", "items": {"$ref": "#/definitions/models.Content"}}
            }
        },
        "service.HealthReport": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "database": {"type": "string"},
                "cache": {"type": "string"},
                "uptime_sec": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Second Brain API",
	Description:      "Save links, list them and share the whole collection read-only.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
