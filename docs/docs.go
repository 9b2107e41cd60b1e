// Package docs registers the OpenAPI document served by gin-swagger.
// Keep it in step with the handler annotations when routes change.
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
        "/health": {
            "get": {
                "description": "Pings the catalog mirror database and Redis. Disabled backends report \"disabled\".",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/cart/badge": {
            "get": {
                "description": "Number of items in the cart. An unknown or unreachable cart counts as empty.",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get the header cart counter",
                "parameters": [
                    {"type": "string", "description": "Storefront cart ID", "name": "cart_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/categories": {
            "get": {
                "description": "Get the candy category directory and its groups. An unreachable menu endpoint yields empty lists.",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get candy categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/collections": {
            "get": {
                "description": "Landing point for collection requests without a handle.",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Collections index",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/collections/{handle}": {
            "get": {
                "description": "Get one page of a collection with its products partitioned into category sections.\nq narrows by product title, tag (repeatable) selects categories.",
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Get a filtered collection page",
                "parameters": [
                    {"type": "string", "description": "Collection handle", "name": "handle", "in": "path", "required": true},
                    {"type": "string", "description": "Title search, case-insensitive", "name": "q", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "csv", "description": "Selected category tags (repeatable ?tag=a&tag=b)", "name": "tag", "in": "query"},
                    {"type": "string", "description": "Cursor of the next page", "name": "after", "in": "query"},
                    {"type": "string", "description": "Cursor of the previous page", "name": "before", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "302": {"description": "Blank handle, redirected to the collections index"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/views": {
            "post": {
                "description": "Open a stateful filter view over one collection page. The category directory is\nloaded in the background; categories_loaded tells whether sections are final.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["store views"],
                "summary": "Open a catalog view",
                "parameters": [
                    {"description": "Collection page to browse", "name": "view", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateViewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/views/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["store views"],
                "summary": "Get a catalog view",
                "parameters": [
                    {"type": "string", "description": "View ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            },
            "delete": {
                "description": "Tears the view down. A directory fetch still in flight is discarded.",
                "produces": ["application/json"],
                "tags": ["store views"],
                "summary": "Close a catalog view",
                "parameters": [
                    {"type": "string", "description": "View ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/views/{id}/events": {
            "post": {
                "description": "Applies one event (open_search, close_search, open_filter_panel, close_filter_panel,\nset_text_query, toggle_category, toggle_group, next_step, prev_step) and returns the new snapshot.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["store views"],
                "summary": "Send a UI event to a catalog view",
                "parameters": [
                    {"type": "string", "description": "View ID", "name": "id", "in": "path", "required": true},
                    {"description": "Event", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ViewEvent"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ApiResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "boolean"},
                "message": {"type": "string"},
                "meta": {"$ref": "#/definitions/models.PageInfo"},
                "rate_limit": {"$ref": "#/definitions/models.RateLimiter"},
                "requested_entity": {"type": "string"}
            }
        },
        "models.CreateViewRequest": {
            "type": "object",
            "required": ["handle"],
            "properties": {
                "after": {"type": "string"},
                "before": {"type": "string"},
                "handle": {"type": "string", "example": "bland-selv-slik"}
            }
        },
        "models.PageInfo": {
            "type": "object",
            "properties": {
                "endCursor": {"type": "string"},
                "hasNextPage": {"type": "boolean"},
                "hasPreviousPage": {"type": "boolean"},
                "startCursor": {"type": "string"}
            }
        },
        "models.RateLimiter": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"},
                "remaining": {"type": "integer"},
                "reset_at": {"type": "string"},
                "reset_in_seconds": {"type": "integer"}
            }
        },
        "models.ViewEvent": {
            "type": "object",
            "required": ["type"],
            "properties": {
                "type": {"type": "string", "example": "set_text_query"},
                "value": {"type": "string", "example": "choko"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "CandyExpress Storefront API",
	Description:      "Candy catalog filtering, category directory and cart badge for the CandyExpress storefront",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
