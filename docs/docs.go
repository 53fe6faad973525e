// Package docs registers the OpenAPI document served under /swagger/.
// Regenerate with: swag init -g cmd/storefront/main.go
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
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/users/register": {"post": {"tags": ["Users"], "summary": "Register a new customer", "responses": {"201": {"description": "Created"}}}},
        "/users/login": {"post": {"tags": ["Users"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "429": {"description": "Too many attempts"}}}},
        "/users/profile": {"get": {"tags": ["Users"], "summary": "Current user profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/addresses": {
            "get": {"tags": ["Addresses"], "summary": "List own addresses", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Addresses"], "summary": "Add a delivery address", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/products": {"get": {"tags": ["Products"], "summary": "Browse the catalog", "responses": {"200": {"description": "OK"}}}},
        "/products/{id}": {"get": {"tags": ["Products"], "summary": "Get a product", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/categories": {"get": {"tags": ["Products"], "summary": "List categories", "responses": {"200": {"description": "OK"}}}},
        "/slides": {"get": {"tags": ["Products"], "summary": "Landing page slides", "responses": {"200": {"description": "OK"}}}},
        "/carts": {
            "get": {"tags": ["Carts"], "summary": "Current cart", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Carts"], "summary": "Empty the cart", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/carts/items": {
            "post": {"tags": ["Carts"], "summary": "Add a product to the cart", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["Carts"], "summary": "Set the quantity of a cart line", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/orders": {
            "get": {"tags": ["Orders"], "summary": "List own orders", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Orders"], "summary": "Place an order", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "409": {"description": "Insufficient stock"}}}
        },
        "/orders/{id}/cancel": {"post": {"tags": ["Orders"], "summary": "Cancel an own pending order", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/payments": {"post": {"tags": ["Payments"], "summary": "Start a card payment", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/payments/webhook": {"post": {"tags": ["Payments"], "summary": "Stripe webhook receiver", "responses": {"200": {"description": "OK"}}}},
        "/admin/orders/{id}/status": {"patch": {"tags": ["Admin"], "summary": "Move an order through its lifecycle", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "Transition not allowed"}}}}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Storefront and back-office API: catalog, carts, checkout, payments and administration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
