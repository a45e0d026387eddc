// Package api holds the OpenAPI description of the service.
//
// The paths are regenerated from the handler annotations with
//
//	swag init --output api --outputTypes go
package api

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
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": ["General"],
                "summary": "API root",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": ["General"],
                "summary": "API version",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns 204 if the database can be reached. Otherwise, 500 and the error",
                "tags": ["General"],
                "summary": "Get health",
                "responses": {"204": {"description": "No Content"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": ["v1"],
                "summary": "v1 API",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/transactions": {
            "get": {"tags": ["Transactions"], "summary": "Get transactions", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Transactions"], "summary": "Create transactions", "responses": {"201": {"description": "Created"}}}
        },
        "/v1/transactions/{id}": {
            "get": {"tags": ["Transactions"], "summary": "Get transaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Transactions"], "summary": "Update transaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Transactions"], "summary": "Delete transaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/transactions/{id}/status": {
            "put": {"tags": ["Transactions"], "summary": "Set transaction status", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/v1/debts": {
            "get": {"tags": ["Debts"], "summary": "Get debts", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Debts"], "summary": "Create debts", "responses": {"201": {"description": "Created"}}}
        },
        "/v1/debts/{id}": {
            "get": {"tags": ["Debts"], "summary": "Get debt", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Debts"], "summary": "Update debt", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Debts"], "summary": "Delete debt", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/debts/{id}/schedule": {
            "get": {"tags": ["Debts"], "summary": "Get loan schedule", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/v1/debts/{id}/statements": {
            "get": {"tags": ["Debts"], "summary": "Get statement projection", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/v1/budgets": {
            "get": {"tags": ["Budgets"], "summary": "Get budgets", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Budgets"], "summary": "Set budget", "responses": {"200": {"description": "OK"}, "201": {"description": "Created"}}}
        },
        "/v1/budgets/status": {
            "get": {"tags": ["Budgets"], "summary": "Get budget status", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/budgets/{id}": {
            "delete": {"tags": ["Budgets"], "summary": "Delete budget", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/dashboard": {
            "get": {"tags": ["Views"], "summary": "Get dashboard", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/bills": {
            "get": {"tags": ["Views"], "summary": "Get bills", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/expenses": {
            "get": {"tags": ["Views"], "summary": "Get expenses", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/calendar": {
            "get": {"tags": ["Views"], "summary": "Get calendar", "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
