// Package docs holds the Swagger 2.0 document for the notes API, built from
// the general info in cmd/api-postgres and the handler annotations. Keep it
// in sync by running go generate ./cmd/api-postgres.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/notes": {
            "get": {
                "description": "Returns one page of notes ordered by id.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "notes"
                ],
                "summary": "List notes",
                "parameters": [
                    {
                        "minimum": 1,
                        "type": "integer",
                        "default": 1,
                        "description": "Page number (1-based)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "maximum": 100,
                        "minimum": 1,
                        "type": "integer",
                        "default": 10,
                        "description": "Notes per page",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/note.ListResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Inserts a note and returns the stored row.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "notes"
                ],
                "summary": "Create a note",
                "parameters": [
                    {
                        "description": "Note to create",
                        "name": "note",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/note.CreateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/note.Response"
                        }
                    },
                    "400": {
                        "description": "Invalid JSON or validation error",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid bearer token",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Token lacks the writer role",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Note already exists",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "413": {
                        "description": "Request body too large",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "429": {
                        "description": "Too many requests",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    }
                }
            }
        },
        "/notes/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "notes"
                ],
                "summary": "Get a note",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Note ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/note.Response"
                        }
                    },
                    "400": {
                        "description": "Invalid note ID",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Note not found",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "notes"
                ],
                "summary": "Delete a note",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Note ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Invalid note ID",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid bearer token",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Token lacks the writer role",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Note not found",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "429": {
                        "description": "Too many requests",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Changes only the fields present in the body; updated_at is always refreshed.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "notes"
                ],
                "summary": "Update a note",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Note ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "note",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/note.UpdateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/note.Response"
                        }
                    },
                    "400": {
                        "description": "Invalid JSON, note ID or field",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid bearer token",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "403": {
                        "description": "Token lacks the writer role",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Note not found",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Note already exists",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "413": {
                        "description": "Request body too large",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "429": {
                        "description": "Too many requests",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorBody"
                        }
                    }
                }
            }
        },
        "/ping": {
            "get": {
                "description": "Reports that the API process is serving requests",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.PingResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "http.PingResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "API Services"
                },
                "status": {
                    "type": "string",
                    "example": "ok"
                }
            }
        },
        "note.CreateRequest": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string",
                    "example": "milk, eggs, bread"
                },
                "is_published": {
                    "type": "boolean",
                    "example": false
                },
                "title": {
                    "type": "string",
                    "example": "Groceries"
                }
            }
        },
        "note.DTO": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string",
                    "example": "milk, eggs, bread"
                },
                "created_at": {
                    "type": "string",
                    "example": "2025-10-26T12:00:00Z"
                },
                "id": {
                    "type": "string",
                    "example": "6f1c2b1e-8d5a-4c1e-9f0a-3b2d4e5f6a7b"
                },
                "is_published": {
                    "type": "boolean",
                    "example": false
                },
                "title": {
                    "type": "string",
                    "example": "Groceries"
                },
                "updated_at": {
                    "type": "string",
                    "example": "2025-10-26T12:00:00Z"
                }
            }
        },
        "note.ListResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer",
                    "example": 1
                },
                "notes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/note.DTO"
                    }
                },
                "pagination": {
                    "$ref": "#/definitions/pagination.Metadata"
                },
                "status": {
                    "type": "string",
                    "example": "ok"
                }
            }
        },
        "note.Response": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/note.DTO"
                },
                "status": {
                    "type": "string",
                    "example": "success"
                }
            }
        },
        "note.UpdateRequest": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string",
                    "example": "milk, eggs, bread, coffee"
                },
                "is_published": {
                    "type": "boolean",
                    "example": true
                },
                "title": {
                    "type": "string",
                    "example": "Groceries (weekend)"
                }
            }
        },
        "pagination.Metadata": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        },
        "respond.ErrorBody": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Note already exists"
                },
                "status": {
                    "type": "string",
                    "example": "error"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT bearer token. Send the header as \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Notes API",
	Description:      "REST API for creating and browsing notes stored in PostgreSQL or SQLite.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
