// Package docs registers the OpenAPI document served by the swagger UI.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "API status",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["upload"],
                "summary": "Upload a marketplace export",
                "parameters": [
                    {"type": "file", "description": "Export file (xlsx, xlsm or csv)", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "default": "custom", "description": "Marketplace portal", "name": "portal", "in": "formData"},
                    {"type": "string", "description": "Override report frequency (monthly or quarterly)", "name": "report_period", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "400": {"description": "Missing file, unsupported type or portal", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "422": {"description": "File could not be parsed", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/generate-csv": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Generate a B2C CSV",
                "parameters": [
                    {"description": "Records and output options", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.GenerateCSVRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "400": {"description": "Validation error or no data", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/generate-b2b": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Generate a B2B CSV",
                "parameters": [
                    {"description": "Stored upload and output options", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.GenerateB2BRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "400": {"description": "Validation error or no B2B rows", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "404": {"description": "Upload not found", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/download/{filename}": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["reports"],
                "summary": "Download a generated CSV",
                "parameters": [
                    {"type": "string", "description": "Generated report filename", "name": "filename", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "File not found", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "supported_portals": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"$ref": "#/definitions/handler.APIError"}
            }
        },
        "domain.NormalizedRecord": {
            "type": "object",
            "properties": {
                "invoice_date": {"type": "string", "example": "09/05/2025"},
                "invoice_no": {"type": "string"},
                "hsn_code": {"type": "string"},
                "product_name": {"type": "string"},
                "quantity": {"type": "number"},
                "taxable_value": {"type": "number"},
                "cgst_rate": {"type": "number"},
                "sgst_rate": {"type": "number"},
                "igst_rate": {"type": "number"},
                "cgst_amount": {"type": "number"},
                "sgst_amount": {"type": "number"},
                "igst_amount": {"type": "number"},
                "total_amount": {"type": "number"},
                "place_of_supply": {"type": "string", "example": "27-Maharashtra"},
                "rate": {"type": "integer", "example": 18},
                "portal": {"type": "string", "example": "Amazon"}
            }
        },
        "handler.GenerateCSVRequest": {
            "type": "object",
            "required": ["data"],
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.NormalizedRecord"}},
                "format": {"type": "string", "enum": ["detailed", "aggregated"], "example": "aggregated"},
                "report_frequency": {"type": "string", "enum": ["monthly", "quarterly"], "example": "quarterly"},
                "gstin": {"type": "string", "example": "29AICPN1083C1ZI"}
            }
        },
        "handler.GenerateB2BRequest": {
            "type": "object",
            "required": ["filename"],
            "properties": {
                "filename": {"type": "string", "example": "20250509_140307_ready_to_file.xlsx"},
                "report_frequency": {"type": "string", "enum": ["monthly", "quarterly"], "example": "quarterly"},
                "gstin": {"type": "string", "example": "29AICPN1083C1ZI"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "SellerSuite API",
	Description:      "Converts marketplace seller exports into GSTR-1 B2CS, B2C and B2B filing CSVs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
