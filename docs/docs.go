// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/formats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "List the supported output formats and the accepted upload types",
                "produces": ["application/json"],
                "tags": ["formats"],
                "summary": "List output formats",
                "responses": {
                    "200": {
                        "description": "Output formats",
                        "schema": {"$ref": "#/definitions/handler.Response"}
                    }
                }
            }
        },
        "/extractions": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Upload a document (TXT, MD, PNG, JPG, WEBP, PDF, max 10MB) and receive AI-extracted content in the chosen format",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["extractions"],
                "summary": "Extract content from a document",
                "parameters": [
                    {"type": "file", "description": "Document to extract from", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "default": "SUMMARY", "description": "Output format: SUMMARY, JSON_EXTRACT or KEY_VALUE_PAIRS", "name": "format", "in": "formData"},
                    {"type": "string", "description": "Optional custom instructions", "name": "instructions", "in": "formData"},
                    {"type": "string", "description": "Return a file instead of JSON: csv or xlsx", "name": "export", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "Extraction completed", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Missing file, bad format, or unreadable file", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "409": {"description": "Another extraction is in progress", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "415": {"description": "Unsupported file type", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "502": {"description": "Generation API request failed", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "503": {"description": "API key not configured", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/extractions/status": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Report whether an extraction is running, and how the last one ended",
                "produces": ["application/json"],
                "tags": ["extractions"],
                "summary": "Extraction lifecycle status",
                "responses": {
                    "200": {"description": "Lifecycle status", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        }
    },
    "definitions": {
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.APIError"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "success": {"type": "boolean", "example": true}
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "DocuExtract API",
	Description:      "Upload a document and receive AI-extracted content as a summary, JSON, or key-value pairs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
