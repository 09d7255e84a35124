// Package docs holds the swagger document served under /swagger. It is
// maintained by hand in the swag template format; keep it in step with the
// handler annotations.
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
        "/businesses": {
            "get": {
                "description": "Pages through all businesses ordered by ID. next is null on the last page. Malformed offset or limit values fall back to the defaults.",
                "produces": ["application/json"],
                "tags": ["businesses"],
                "summary": "List businesses",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Offset", "name": "offset", "in": "query"},
                    {"type": "integer", "default": 3, "description": "Page size", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.businessListResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["businesses"],
                "summary": "Create a business",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.businessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/businesses/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["businesses"],
                "summary": "Get a business",
                "parameters": [
                    {"type": "integer", "description": "Business ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.businessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["businesses"],
                "summary": "Replace a business",
                "parameters": [
                    {"type": "integer", "description": "Business ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.businessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "delete": {
                "tags": ["businesses"],
                "summary": "Delete a business and all of its reviews",
                "parameters": [
                    {"type": "integer", "description": "Business ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/owners/{owner_id}/businesses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["businesses"],
                "summary": "List an owner's businesses",
                "parameters": [
                    {"type": "integer", "description": "Owner ID", "name": "owner_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.businessResponse"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/reviews": {
            "post": {
                "description": "A user may review each business once.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Review a business",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.reviewResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/reviews/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Get a review",
                "parameters": [
                    {"type": "integer", "description": "Review ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.reviewResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "put": {
                "description": "stars is required. review_text is replaced only when present.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Edit a review",
                "parameters": [
                    {"type": "integer", "description": "Review ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.reviewResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "delete": {
                "tags": ["reviews"],
                "summary": "Delete a review",
                "parameters": [
                    {"type": "integer", "description": "Review ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/users/{user_id}/reviews": {
            "get": {
                "description": "Answers 404 with an empty array when the user has no reviews.",
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "List a user's reviews",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.reviewResponse"}}},
                    "404": {"description": "Not Found", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.reviewResponse"}}}
                }
            }
        },
        "/decode": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Show verified JWT claims",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handler.businessListResponse": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/handler.businessResponse"}},
                "next": {"type": "string"}
            }
        },
        "handler.businessResponse": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "owner_id": {"type": "integer"},
                "self": {"type": "string"},
                "state": {"type": "string"},
                "street_address": {"type": "string"},
                "zip_code": {"type": "integer"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "Error": {"type": "string"},
                "code": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "handler.reviewResponse": {
            "type": "object",
            "properties": {
                "business": {"type": "string"},
                "id": {"type": "integer"},
                "review_text": {"type": "string"},
                "self": {"type": "string"},
                "stars": {"type": "integer"},
                "user_id": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Business Review API",
	Description:      "Businesses and the reviews users leave for them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
