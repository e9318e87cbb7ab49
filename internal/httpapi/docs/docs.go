// Package docs holds the OpenAPI document served under /swagger when the
// binary is built with -tags=swagger. Regenerate with swag init.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {"name": "agingd maintainers"},
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/age_progression": {
            "post": {
                "description": "Selects a dataset face matching age, gender and race and ages it to the given age.",
                "consumes": ["application/json", "application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Age a sample face",
                "parameters": [{"description": "Subject", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.AgeProgressionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.RunResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/morphing": {
            "post": {
                "description": "Interpolates between two selected faces over length frames.",
                "consumes": ["application/json", "application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Morph between two sample faces",
                "parameters": [{"description": "Subjects", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.PairRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.RunResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/kids": {
            "post": {
                "description": "Synthesizes length offspring frames of two selected faces.",
                "consumes": ["application/json", "application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Combine two sample faces",
                "parameters": [{"description": "Subjects", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.PairRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.RunResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/checkpoints": {
            "get": {
                "produces": ["application/json"],
                "tags": ["model"],
                "summary": "List checkpoints",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.CheckpointsResponse"}}}
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["model"],
                "summary": "Dispatcher status",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}}
            }
        }
    },
    "definitions": {
        "types.AgeProgressionRequest": {
            "type": "object",
            "properties": {
                "age": {"type": "integer", "example": 25},
                "gender": {"type": "integer", "example": 0},
                "race": {"type": "integer", "example": 0}
            }
        },
        "types.PairRequest": {
            "type": "object",
            "properties": {
                "age_1": {"type": "integer", "example": 10},
                "gender_1": {"type": "integer", "example": 1},
                "race_1": {"type": "integer", "example": 2},
                "age_2": {"type": "integer", "example": 60},
                "gender_2": {"type": "integer", "example": 0},
                "race_2": {"type": "integer", "example": 1},
                "length": {"type": "integer", "example": 10}
            }
        },
        "types.RunResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "mode": {"type": "string", "example": "age_progression"},
                "original_images": {"type": "array", "items": {"type": "string"}},
                "result_images": {"type": "array", "items": {"type": "string"}},
                "result_image": {"type": "string"}
            }
        },
        "types.Checkpoint": {
            "type": "object",
            "properties": {
                "z_channels": {"type": "integer", "example": 100},
                "name": {"type": "string", "example": "100_Z_channels_200th_epoch"},
                "path": {"type": "string"},
                "present": {"type": "boolean"}
            }
        },
        "types.CheckpointsResponse": {
            "type": "object",
            "properties": {
                "checkpoints": {"type": "array", "items": {"$ref": "#/definitions/types.Checkpoint"}},
                "active": {"type": "integer", "example": 100}
            }
        },
        "types.StatusResponse": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "example": "ready"},
                "backend": {"type": "string", "example": "http"},
                "checkpoint": {"$ref": "#/definitions/types.Checkpoint"},
                "queue_len": {"type": "integer"},
                "inflight": {"type": "integer"},
                "max_queue_depth": {"type": "integer"},
                "max_inflight": {"type": "integer"},
                "dispatches_total": {"type": "integer"},
                "failures_total": {"type": "integer"},
                "last_error": {"type": "string"},
                "uptime_seconds": {"type": "integer"},
                "server_time_unix": {"type": "integer"}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "integer", "example": 404}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "agingd API",
	Description:      "Demographic sample selection and face aging, morphing and kids generation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
