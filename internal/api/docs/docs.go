// Package docs holds the OpenAPI description served under /swagger in dev mode.
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
    "paths": {
        "/login": {
            "post": {
                "summary": "Classify credentials and issue a session token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "success, bad password or not registered", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "300": {"description": "login failed", "schema": {"$ref": "#/definitions/dto.LoginFailureResponse"}}
                }
            }
        },
        "/login/status": {
            "post": {
                "summary": "Evaluate a session token",
                "parameters": [{"in": "body", "name": "body", "schema": {"$ref": "#/definitions/dto.StatusRequest"}}],
                "responses": {
                    "200": {"description": "authenticated (code 200) or expired (code 300)", "schema": {"$ref": "#/definitions/dto.StatusResponse"}},
                    "300": {"description": "invalid token", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "summary": "Acknowledge a logout",
                "responses": {
                    "200": {"description": "logout succeeded", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "300": {"description": "no token", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "summary": "Register a profile and its credentials",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}],
                "responses": {
                    "200": {"description": "registration succeeded", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "300": {"description": "registration failed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/signUpCompetition": {
            "post": {
                "summary": "Record a competition sign-up",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SignUpCompetitionRequest"}}],
                "responses": {
                    "200": {"description": "sign-up recorded", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "300": {"description": "sign-up failed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/isSignUp": {
            "post": {
                "summary": "Return the sign-up records of a user for a competition",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.IsSignUpRequest"}}],
                "responses": {
                    "200": {"description": "records, or [{isSignUp:false}]"},
                    "300": {"description": "lookup failed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/competitionUserList": {
            "post": {
                "summary": "List sign-ups",
                "parameters": [
                    {"in": "query", "name": "query", "type": "string"},
                    {"in": "query", "name": "order", "type": "string"},
                    {"in": "query", "name": "page", "type": "integer"},
                    {"in": "query", "name": "per_page", "type": "integer"}
                ],
                "responses": {"200": {"description": "sign-up list"}}
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {"type": "object", "required": ["username", "password"], "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "dto.LoginResponse": {"type": "object", "properties": {"code": {"type": "integer"}, "message": {"type": "string"}, "token": {"type": "string"}}},
        "dto.LoginFailureResponse": {"type": "object", "properties": {"code": {"type": "integer"}, "error": {"type": "string"}, "message": {"type": "string"}}},
        "dto.StatusRequest": {"type": "object", "properties": {"token": {"type": "string"}}},
        "dto.StatusResponse": {"type": "object", "properties": {"code": {"type": "integer"}, "username": {"type": "string"}, "userId": {"type": "string"}}},
        "dto.RegisterRequest": {"type": "object", "required": ["username", "password"], "properties": {"username": {"type": "string"}, "password": {"type": "string"}, "phone": {"type": "string"}, "classId": {"type": "string"}, "college": {"type": "string"}, "scoreNumber": {"type": "string"}}},
        "dto.SignUpCompetitionRequest": {"type": "object", "required": ["userId", "id"], "properties": {"userId": {"type": "string"}, "competition": {"type": "string"}, "id": {"type": "string"}}},
        "dto.IsSignUpRequest": {"type": "object", "required": ["username", "id"], "properties": {"username": {"type": "string"}, "id": {"type": "string"}}},
        "dto.MessageResponse": {"type": "object", "properties": {"code": {"type": "integer"}, "message": {"type": "string"}}},
        "dto.ErrorResponse": {"type": "object", "properties": {"code": {"type": "integer"}, "errmsg": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Societies API",
	Description:      "Accounts, session tokens and competition sign-ups. Clients must read the body code: 200 is success, 300 is failure.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
