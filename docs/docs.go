// Package docs registers the Swagger document served at /swagger. Keep it in
// step with the handler annotations.
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
        "/bloomLogic/chat": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Sends a chat message to the model. Off-topic questions are declined.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assistant"],
                "summary": "Chat with the finance assistant",
                "parameters": [
                    {
                        "description": "Chat message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.MessageRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Assistant reply", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "400": {"description": "Empty or malformed message", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "API key not configured", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Model provider failed", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/bloomLogic/geminiResponse": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Sends a fixed prompt to the configured model.",
                "produces": ["application/json"],
                "tags": ["assistant"],
                "summary": "Model gateway smoke test",
                "responses": {
                    "200": {"description": "Model reply", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "500": {"description": "API key not configured", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Model provider failed", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/bloomLogic/healthScore": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Scores financial data 0-100 with a four-part breakdown and recommendations.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["health-score"],
                "summary": "Calculate financial health score",
                "parameters": [
                    {
                        "description": "Financial data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.MessageRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Parsed health score", "schema": {"$ref": "#/definitions/handler.HealthScoreResponse"}},
                    "400": {"description": "Empty or malformed message", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "API key not configured", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Model provider failed", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/bloomLogic/importCSV": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Validates a CSV with the model, maps its columns and returns the valid transactions.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["import"],
                "summary": "Import transactions from CSV",
                "parameters": [
                    {"type": "file", "description": "CSV file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "Imported transactions", "schema": {"$ref": "#/definitions/domain.ImportResult"}},
                    "400": {"description": "Missing file, not a CSV, irrelevant or invalid data", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "API key not configured", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Model provider failed", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/bloomLogic/importCSV/export": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Runs the import pipeline and returns the valid transactions as CSV or XLSX.",
                "consumes": ["multipart/form-data"],
                "produces": ["text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["import"],
                "summary": "Import a CSV and download the cleaned transactions",
                "parameters": [
                    {"type": "file", "description": "CSV file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "default": "csv", "description": "csv or xlsx", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Transactions export", "schema": {"type": "file"}},
                    "400": {"description": "Missing file, bad format, irrelevant or invalid data", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Model provider failed", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/bloomLogic/insights": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Turns a financial summary into 3-4 personalized insights.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assistant"],
                "summary": "Generate financial insights",
                "parameters": [
                    {
                        "description": "Financial summary",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.MessageRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Insights", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "400": {"description": "Empty or malformed message", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "API key not configured", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Model provider failed", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/bloomLogic/processFile": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Uploads a PDF or CSV and answers a question from its financial content.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["assistant"],
                "summary": "Ask a question about a document",
                "parameters": [
                    {"type": "file", "description": "PDF or CSV document", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Question about the document", "name": "user_question", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "Answer, or a refusal for non-financial documents", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "400": {"description": "Missing file or unsupported format", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "PDF support or API key missing", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Model provider failed", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ImportResult": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "skippedRows": {"type": "integer"},
                "success": {"type": "boolean"},
                "totalRows": {"type": "integer"},
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/domain.Transaction"}},
                "validRows": {"type": "integer"}
            }
        },
        "domain.Transaction": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "paymentMethod": {"type": "string"},
                "transactionName": {"type": "string"},
                "transactionType": {"type": "string"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"}
            }
        },
        "handler.HealthScoreResponse": {
            "type": "object",
            "properties": {
                "budgetAdherenceScore": {"type": "integer", "example": 35},
                "emergencyFundScore": {"type": "integer", "example": 9},
                "message": {"type": "string"},
                "recommendationList": {"type": "array", "items": {"type": "string"}},
                "recommendations": {"type": "string"},
                "savingsRateScore": {"type": "integer", "example": 25},
                "score": {"type": "integer", "example": 87},
                "spendingConsistencyScore": {"type": "integer", "example": 18}
            }
        },
        "handler.MessageRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "How can I cut my grocery spending?"}
            }
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access token.",
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bloom Backend API",
	Description:      "Financial chat, document Q&A, health score and CSV transaction import over a hosted language model.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
