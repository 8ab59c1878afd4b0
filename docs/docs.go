// Package docs holds the OpenAPI document served at /swagger.
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
        "/api/v1/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "List items",
                "parameters": [
                    {"type": "string", "description": "Filter by status (pending/at_org/delivered)", "name": "status", "in": "query"},
                    {"type": "integer", "description": "Page size (default: 20)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Page offset (default: 0)", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/items/status": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Update custody status of a batch of items",
                "parameters": [
                    {"description": "Batch status update", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateStatusReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.updateStatusResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ResultResp"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.ResultResp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/items/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Get item detail",
                "parameters": [{"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/items/{id}/audits": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Get item custody history",
                "parameters": [{"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.updateStatusReq": {
            "type": "object",
            "properties": {
                "itemIds": {"type": "array", "items": {"type": "integer"}},
                "status": {"type": "string", "enum": ["pending", "delivered", "delivered_to_user"]},
                "deliveredByUserId": {"type": "integer"},
                "userRole": {"type": "string", "enum": ["ADMIN", "VOLUNTEER"]}
            }
        },
        "http.updateStatusResp": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "updatedGames": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "id": {"type": "integer"},
                            "newStatus": {"type": "string"},
                            "title": {"type": "string"}
                        }
                    }
                }
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        },
        "response.ResultResp": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Trade Custody API",
	Description:      "Custody tracking for traded board games: pending, at_org, delivered.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
