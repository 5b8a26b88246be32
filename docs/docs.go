// Package docs holds the OpenAPI description served at /swagger. It is maintained by hand
// alongside the godoc annotations on the handlers in internal/conversion/handler.
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
        "/conversions": {
            "post": {
                "description": "Convert an amount between currencies, deducting the 2% service fee",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Conversions"],
                "summary": "Convert an amount",
                "parameters": [
                    {
                        "description": "Conversion request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.CreateConversionRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.ConversionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "invalid amount", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/conversions/{id}": {
            "get": {
                "description": "Fetch a recently computed conversion by its quote ID. Quotes expire after a short TTL.",
                "produces": ["application/json"],
                "tags": ["Conversions"],
                "summary": "Get a conversion quote",
                "parameters": [
                    {"type": "string", "description": "Quote ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ConversionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/currencies": {
            "get": {
                "description": "Retrieve all currency codes present in the rate table",
                "produces": ["application/json"],
                "tags": ["Rates"],
                "summary": "List supported currencies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GetSupportedCodesResponse"}}
                }
            }
        },
        "/rates/pairs": {
            "get": {
                "description": "Retrieve every currency pair with an explicit rate",
                "produces": ["application/json"],
                "tags": ["Rates"],
                "summary": "List configured pairs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GetPairsResponse"}}
                }
            }
        },
        "/rates/{source}/{target}": {
            "get": {
                "description": "Resolve the multiplier for a currency pair. Pairs missing from the table convert 1:1.",
                "produces": ["application/json"],
                "tags": ["Rates"],
                "summary": "Get exchange rate",
                "parameters": [
                    {"type": "string", "description": "Source currency code", "name": "source", "in": "path", "required": true},
                    {"type": "string", "description": "Target currency code", "name": "target", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GetRateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/swap": {
            "post": {
                "description": "Flip the conversion direction and resolve the rate for the new pair",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Rates"],
                "summary": "Swap currencies",
                "parameters": [
                    {
                        "description": "Current pair",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.SwapRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GetRateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ConversionResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "number", "example": 100},
                "created_at": {"type": "string", "example": "2025-01-02T15:04:05Z"},
                "display": {"type": "string", "example": "12,593.00 KES"},
                "fee_amount": {"type": "number", "example": 257},
                "fee_display": {"type": "string", "example": "Fee: 257.00 KES"},
                "fee_percent": {"type": "number", "example": 2},
                "gross_amount": {"type": "number", "example": 12850},
                "net_amount": {"type": "number", "example": 12593},
                "quote_id": {"type": "string", "example": "77b5d9f5-0569-47e3-aee2-f659d59fbd97"},
                "rate": {"type": "number", "example": 128.5},
                "rate_display": {"type": "string", "example": "1 USD = 128.50 KES"},
                "source": {"type": "string", "example": "USD"},
                "target": {"type": "string", "example": "KES"}
            }
        },
        "handler.CreateConversionRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "string", "example": "100"},
                "source": {"type": "string", "example": "USD"},
                "target": {"type": "string", "example": "KES"}
            }
        },
        "handler.GetPairsResponse": {
            "type": "object",
            "properties": {
                "pairs": {"type": "array", "items": {"$ref": "#/definitions/handler.PairResponse"}}
            }
        },
        "handler.GetRateResponse": {
            "type": "object",
            "properties": {
                "display": {"type": "string", "example": "1 USD = 128.50 KES"},
                "rate": {"type": "number", "example": 128.5},
                "source": {"type": "string", "example": "USD"},
                "target": {"type": "string", "example": "KES"}
            }
        },
        "handler.GetSupportedCodesResponse": {
            "type": "object",
            "properties": {
                "codes": {"type": "array", "items": {"type": "string"}, "example": ["KES", "USD"]}
            }
        },
        "handler.PairResponse": {
            "type": "object",
            "properties": {
                "source": {"type": "string", "example": "USD"},
                "target": {"type": "string", "example": "KES"}
            }
        },
        "handler.SwapRequest": {
            "type": "object",
            "properties": {
                "source": {"type": "string", "example": "USD"},
                "target": {"type": "string", "example": "KES"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "fxcalc API",
	Description:      "Currency conversion calculator with a fixed service fee.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
