// Package docs registers the OpenAPI description served by the swagger UI.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {
            "get": {"tags": ["ops"], "summary": "Readiness check", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errorPayload"}}}}
        },
        "/healthz": {
            "get": {"tags": ["ops"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/validate": {
            "post": {"tags": ["validation"], "summary": "Validate CV", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "editor step (0-4)", "name": "step", "in": "query"},
                    {"description": "candidate CV", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CV"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/validateResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorPayload"}}}}
        },
        "/cvs": {
            "get": {"tags": ["cvs"], "summary": "List own CVs", "security": [{"BearerAuth": []}], "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "page size (default 10, max 100)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "rows to skip", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.CVListResult"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorPayload"}}}},
            "post": {"tags": ["cvs"], "summary": "Create CV", "security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"description": "initial content", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/model.CVPatch"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.CV"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorPayload"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errorPayload"}}}}
        },
        "/cvs/{id}": {
            "get": {"tags": ["cvs"], "summary": "Get CV", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "CV id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CV"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorPayload"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}}},
            "patch": {"tags": ["cvs"], "summary": "Update CV", "security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "CV id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "expected version", "name": "If-Match", "in": "header"},
                    {"description": "fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CVPatch"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CV"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errorPayload"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errorPayload"}}}},
            "delete": {"tags": ["cvs"], "summary": "Delete CV", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "string", "description": "CV id", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}}}
        },
        "/cvs/{id}/analytics": {
            "get": {"tags": ["cvs"], "summary": "CV analytics", "security": [{"BearerAuth": []}], "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "CV id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Analytics"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}}}
        },
        "/cvs/{id}/photo": {
            "post": {"tags": ["cvs"], "summary": "Upload photo", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "CV id", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "image", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CV"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorPayload"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errorPayload"}}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errorPayload"}}}},
            "delete": {"tags": ["cvs"], "summary": "Delete photo", "security": [{"BearerAuth": []}], "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "CV id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CV"}}}}
        },
        "/cvs/{id}/draft": {
            "get": {"tags": ["drafts"], "summary": "Get draft", "security": [{"BearerAuth": []}], "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "CV id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/draft.Draft"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}}},
            "put": {"tags": ["drafts"], "summary": "Save draft", "security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "CV id", "name": "id", "in": "path", "required": true},
                    {"description": "fields to stage", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CVPatch"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/draft.Draft"}}}},
            "delete": {"tags": ["drafts"], "summary": "Discard draft", "security": [{"BearerAuth": []}],
                "parameters": [{"type": "string", "description": "CV id", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}}
        },
        "/cvs/{id}/draft/commit": {
            "post": {"tags": ["drafts"], "summary": "Commit draft", "security": [{"BearerAuth": []}], "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "CV id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CV"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errorPayload"}}}}
        },
        "/public/cvs/{slug}": {
            "get": {"tags": ["public"], "summary": "Get published CV", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "public slug", "name": "slug", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.PublicCV"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}}}
        },
        "/public/cvs/{slug}/events": {
            "post": {"tags": ["public"], "summary": "Record download or share", "consumes": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "public slug", "name": "slug", "in": "path", "required": true},
                    {"description": "event", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/eventRequest"}}
                ],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errorPayload"}}}}
        }
    },
    "definitions": {
        "errorPayload": {"type": "object", "properties": {
            "request_id": {"type": "string"},
            "error": {"type": "object", "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "array", "items": {"type": "string"}}
            }}
        }},
        "eventRequest": {"type": "object", "properties": {"type": {"type": "string", "enum": ["download", "share"]}}},
        "validation.Result": {"type": "object", "properties": {
            "is_valid": {"type": "boolean"},
            "errors": {"type": "array", "items": {"type": "string"}}
        }},
        "validateResponse": {"type": "object", "properties": {
            "is_valid": {"type": "boolean"},
            "errors": {"type": "array", "items": {"type": "string"}},
            "sections": {"type": "object", "additionalProperties": {"$ref": "#/definitions/validation.Result"}}
        }},
        "model.PersonalInfo": {"type": "object", "properties": {
            "first_name": {"type": "string"}, "last_name": {"type": "string"},
            "email": {"type": "string"}, "phone": {"type": "string"},
            "location": {"type": "string"}, "website": {"type": "string"},
            "linkedin": {"type": "string"},
            "summary": {"type": "string"}
        }},
        "model.Experience": {"type": "object", "properties": {
            "id": {"type": "string"}, "position": {"type": "string"}, "company": {"type": "string"},
            "location": {"type": "string"}, "start_date": {"type": "string"}, "end_date": {"type": "string"},
            "current": {"type": "boolean"}, "description": {"type": "string"}
        }},
        "model.Education": {"type": "object", "properties": {
            "id": {"type": "string"}, "degree": {"type": "string"},
            "institution": {"type": "string"}, "location": {"type": "string"},
            "start_date": {"type": "string"}, "end_date": {"type": "string"},
            "gpa": {"type": "string"}, "description": {"type": "string"}
        }},
        "model.Skill": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"},
            "level": {"type": "integer", "minimum": 1, "maximum": 5}, "category": {"type": "string"}
        }},
        "model.Project": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"},
            "technologies": {"type": "array", "items": {"type": "string"}},
            "url": {"type": "string"}, "start_date": {"type": "string"}, "end_date": {"type": "string"}
        }},
        "model.Certification": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "issuer": {"type": "string"},
            "date": {"type": "string"}, "expiry_date": {"type": "string"},
            "credential_id": {"type": "string"}, "url": {"type": "string"}
        }},
        "model.Customization": {"type": "object", "properties": {
            "primary_color": {"type": "string"}, "secondary_color": {"type": "string"},
            "font_family": {"type": "string", "enum": ["inter", "roboto", "lato", "georgia", "merriweather"]},
            "font_size": {"type": "string", "enum": ["small", "medium", "large"]},
            "spacing": {"type": "string", "enum": ["compact", "normal", "relaxed"]},
            "show_photo": {"type": "boolean"}
        }},
        "model.CV": {"type": "object", "properties": {
            "id": {"type": "string"}, "owner_id": {"type": "string"}, "title": {"type": "string"},
            "personal_info": {"$ref": "#/definitions/model.PersonalInfo"},
            "education": {"type": "array", "items": {"$ref": "#/definitions/model.Education"}},
            "experience": {"type": "array", "items": {"$ref": "#/definitions/model.Experience"}},
            "skills": {"type": "array", "items": {"$ref": "#/definitions/model.Skill"}},
            "projects": {"type": "array", "items": {"$ref": "#/definitions/model.Project"}},
            "certifications": {"type": "array", "items": {"$ref": "#/definitions/model.Certification"}},
            "template_id": {"type": "string"},
            "customization": {"$ref": "#/definitions/model.Customization"},
            "is_public": {"type": "boolean"}, "slug": {"type": "string"},
            "photo_url": {"type": "string"}, "version": {"type": "integer"},
            "created_at": {"type": "string", "format": "date-time"},
            "updated_at": {"type": "string", "format": "date-time"}
        }},
        "model.CVPatch": {"type": "object", "properties": {
            "title": {"type": "string"},
            "personal_info": {"$ref": "#/definitions/model.PersonalInfo"},
            "education": {"type": "array", "items": {"$ref": "#/definitions/model.Education"}},
            "experience": {"type": "array", "items": {"$ref": "#/definitions/model.Experience"}},
            "skills": {"type": "array", "items": {"$ref": "#/definitions/model.Skill"}},
            "projects": {"type": "array", "items": {"$ref": "#/definitions/model.Project"}},
            "certifications": {"type": "array", "items": {"$ref": "#/definitions/model.Certification"}},
            "template_id": {"type": "string"},
            "customization": {"$ref": "#/definitions/model.Customization"},
            "is_public": {"type": "boolean"},
            "expected_version": {"type": "integer"}
        }},
        "model.PublicCV": {"type": "object", "properties": {
            "id": {"type": "string"}, "owner_id": {"type": "string"}, "title": {"type": "string"}, "slug": {"type": "string"},
            "personal_info": {"$ref": "#/definitions/model.PersonalInfo"},
            "education": {"type": "array", "items": {"$ref": "#/definitions/model.Education"}},
            "experience": {"type": "array", "items": {"$ref": "#/definitions/model.Experience"}},
            "skills": {"type": "array", "items": {"$ref": "#/definitions/model.Skill"}},
            "projects": {"type": "array", "items": {"$ref": "#/definitions/model.Project"}},
            "certifications": {"type": "array", "items": {"$ref": "#/definitions/model.Certification"}},
            "template_id": {"type": "string"},
            "template_category": {"type": "string", "enum": ["modern", "classic", "creative"]},
            "customization": {"$ref": "#/definitions/model.Customization"},
            "photo_url": {"type": "string"},
            "updated_at": {"type": "string", "format": "date-time"}
        }},
        "model.Analytics": {"type": "object", "properties": {
            "cv_id": {"type": "string"}, "views": {"type": "integer"},
            "downloads": {"type": "integer"}, "shares": {"type": "integer"},
            "last_viewed_at": {"type": "string", "format": "date-time"},
            "created_at": {"type": "string", "format": "date-time"}
        }},
        "draft.Draft": {"type": "object", "properties": {
            "cv_id": {"type": "string"}, "owner_id": {"type": "string"},
            "patch": {"$ref": "#/definitions/model.CVPatch"},
            "updated_at": {"type": "string", "format": "date-time"},
            "expires_at": {"type": "string", "format": "date-time"}
        }},
        "service.CVListResult": {"type": "object", "properties": {
            "data": {"type": "array", "items": {"$ref": "#/definitions/model.CV"}},
            "total": {"type": "integer"}
        }}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CV API",
	Description:      "Resume builder backend: CV storage, validation, publishing and analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
