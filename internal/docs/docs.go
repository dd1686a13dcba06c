// Package docs holds the Swagger 2.0 document served at /swagger. It is
// maintained by hand from the handler annotations; after changing them,
// regenerate with: swag init -g cmd/api/main.go -o internal/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{marshal .Schemes}},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"termsOfService": "http://swagger.io/terms/",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/auth/login": {
			"post": {
				"description": "Accept any email and password and issue a token carrying the chosen role label",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Login",
				"parameters": [
					{
						"description": "Login credentials and role",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Token generated",
						"schema": {
							"$ref": "#/definitions/handlers.AuthResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/clients": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get a paginated list of clients, newest first, optionally filtered",
				"produces": [
					"application/json"
				],
				"tags": [
					"clients"
				],
				"summary": "List clients",
				"parameters": [
					{
						"type": "string",
						"description": "Case-insensitive match on name, company or email",
						"name": "search",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Client status (Lead, Active, Inactive, Churned)",
						"name": "status",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page number (default 1)",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Items per page (default 20, max 100)",
						"name": "page_size",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/pagination.PageResponse-models_Client"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Add a client. Status defaults to Lead and owner to the caller.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"clients"
				],
				"summary": "Create client",
				"parameters": [
					{
						"description": "Client details",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateClientRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Client"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/clients/export": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Download the clients matching the filters as CSV",
				"produces": [
					"text/csv"
				],
				"tags": [
					"clients"
				],
				"summary": "Export clients",
				"parameters": [
					{
						"type": "string",
						"description": "Case-insensitive match on name, company or email",
						"name": "search",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Client status",
						"name": "status",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "CSV file",
						"schema": {
							"type": "string"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/clients/import": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Upload a CSV (multipart field \"file\" or a raw text/csv body). Rows without name, company or email are skipped.",
				"consumes": [
					"multipart/form-data",
					"text/csv"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"clients"
				],
				"summary": "Import clients",
				"parameters": [
					{
						"type": "file",
						"description": "CSV file",
						"name": "file",
						"in": "formData"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/services.ImportResult"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/clients/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get a client by ID",
				"produces": [
					"application/json"
				],
				"tags": [
					"clients"
				],
				"summary": "Get client",
				"parameters": [
					{
						"type": "string",
						"description": "Client ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Client"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Client not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Change the given fields of a client",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"clients"
				],
				"summary": "Update client",
				"parameters": [
					{
						"type": "string",
						"description": "Client ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateClientRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Client"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Client not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Remove a client record. Admin role only. Related records are kept.",
				"produces": [
					"application/json"
				],
				"tags": [
					"clients"
				],
				"summary": "Delete client",
				"parameters": [
					{
						"type": "string",
						"description": "Client ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.MessageResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"403": {
						"description": "Admin role required",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Client not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/clients/{id}/archive": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Set the client's status to Inactive",
				"produces": [
					"application/json"
				],
				"tags": [
					"clients"
				],
				"summary": "Archive client",
				"parameters": [
					{
						"type": "string",
						"description": "Client ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Client"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Client not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/clients/{id}/folios": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"folios"
				],
				"summary": "List folios",
				"parameters": [
					{
						"type": "string",
						"description": "Client ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Folios keyed by folios",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "array",
								"items": {
									"$ref": "#/definitions/models.Folio"
								}
							}
						}
					},
					"404": {
						"description": "Client not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"folios"
				],
				"summary": "Add folio",
				"parameters": [
					{
						"type": "string",
						"description": "Client ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Folio",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateFolioRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Folio"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Client not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/clients/{id}/holdings": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"holdings"
				],
				"summary": "List holdings",
				"parameters": [
					{
						"type": "string",
						"description": "Client ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Holdings keyed by holdings",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "array",
								"items": {
									"$ref": "#/definitions/models.Holding"
								}
							}
						}
					},
					"404": {
						"description": "Client not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Record a position. The price history starts with the purchase cost and today's price.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"holdings"
				],
				"summary": "Add holding",
				"parameters": [
					{
						"type": "string",
						"description": "Client ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Holding",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateHoldingRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Holding"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Client not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/clients/{id}/notes": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get a client's notes, newest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"notes"
				],
				"summary": "List notes",
				"parameters": [
					{
						"type": "string",
						"description": "Client ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Notes keyed by notes",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "array",
								"items": {
									"$ref": "#/definitions/models.Note"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Client not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Log an interaction. The client's last contact moves to now.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"notes"
				],
				"summary": "Add note",
				"parameters": [
					{
						"type": "string",
						"description": "Client ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Note",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.NoteRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Note"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Client not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/clients/{id}/portfolio": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Totals, asset allocation, absolute return, CAGR and the XIRR approximation, plus per-holding performance",
				"produces": [
					"application/json"
				],
				"tags": [
					"holdings"
				],
				"summary": "Client portfolio",
				"parameters": [
					{
						"type": "string",
						"description": "Client ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/analytics.PortfolioPerformance"
						}
					},
					"404": {
						"description": "Client not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/clients/{id}/report/{format}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Render the client's portfolio report as JSON, Markdown, printable HTML, PDF or XLSX",
				"produces": [
					"application/json",
					"text/markdown",
					"text/html",
					"application/pdf",
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				],
				"tags": [
					"reports"
				],
				"summary": "Client report",
				"parameters": [
					{
						"type": "string",
						"description": "Client ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "json, md, html, pdf or xlsx",
						"name": "format",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "ISO 4217 currency code (default from configuration)",
						"name": "currency",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"400": {
						"description": "Unsupported format",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Client not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/dashboard": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Client counts by status, pending tasks, five newest clients and five soonest open tasks",
				"produces": [
					"application/json"
				],
				"tags": [
					"dashboard"
				],
				"summary": "Dashboard",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.Dashboard"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/folios/{id}": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"folios"
				],
				"summary": "Update folio",
				"parameters": [
					{
						"type": "string",
						"description": "Folio ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateFolioRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Folio"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Folio not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"folios"
				],
				"summary": "Delete folio",
				"parameters": [
					{
						"type": "string",
						"description": "Folio ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.MessageResponse"
						}
					},
					"404": {
						"description": "Folio not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/holdings/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"holdings"
				],
				"summary": "Get holding",
				"parameters": [
					{
						"type": "string",
						"description": "Holding ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Holding"
						}
					},
					"404": {
						"description": "Holding not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Change the given fields. A new current price appends one price history sample.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"holdings"
				],
				"summary": "Update holding",
				"parameters": [
					{
						"type": "string",
						"description": "Holding ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateHoldingRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Holding"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Holding not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"holdings"
				],
				"summary": "Delete holding",
				"parameters": [
					{
						"type": "string",
						"description": "Holding ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.MessageResponse"
						}
					},
					"404": {
						"description": "Holding not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/holdings/{id}/price": {
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"holdings"
				],
				"summary": "Update holding price",
				"parameters": [
					{
						"type": "string",
						"description": "Holding ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "New price",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdatePriceRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Holding"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Holding not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/me": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Return the email, display name and role carried by the token",
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Current user",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.Actor"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/notes/{id}": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"notes"
				],
				"summary": "Update note",
				"parameters": [
					{
						"type": "string",
						"description": "Note ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Note",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.NoteRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Note"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Note not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"notes"
				],
				"summary": "Delete note",
				"parameters": [
					{
						"type": "string",
						"description": "Note ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.MessageResponse"
						}
					},
					"404": {
						"description": "Note not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/portfolio/summary": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Invested and current value of every holding, by asset class",
				"produces": [
					"application/json"
				],
				"tags": [
					"holdings"
				],
				"summary": "Firm summary",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/analytics.Summary"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/tasks": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get a paginated list of tasks, soonest due first",
				"produces": [
					"application/json"
				],
				"tags": [
					"tasks"
				],
				"summary": "List tasks",
				"parameters": [
					{
						"type": "string",
						"description": "Client ID",
						"name": "client_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Task status (Pending, In Progress, Completed)",
						"name": "status",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page number (default 1)",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Items per page (default 20, max 100)",
						"name": "page_size",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/pagination.PageResponse-models_Task"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Add a task. Status defaults to Pending, priority to Medium and assignee to the caller.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"tasks"
				],
				"summary": "Create task",
				"parameters": [
					{
						"description": "Task",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateTaskRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Task"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Client not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/tasks/board": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get every task grouped into Pending, In Progress and Completed columns",
				"produces": [
					"application/json"
				],
				"tags": [
					"tasks"
				],
				"summary": "Task board",
				"responses": {
					"200": {
						"description": "Board columns keyed by columns",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "array",
								"items": {
									"$ref": "#/definitions/services.TaskColumn"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/tasks/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"tasks"
				],
				"summary": "Get task",
				"parameters": [
					{
						"type": "string",
						"description": "Task ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Task"
						}
					},
					"404": {
						"description": "Task not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"tasks"
				],
				"summary": "Update task",
				"parameters": [
					{
						"type": "string",
						"description": "Task ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateTaskRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Task"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Task not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"tasks"
				],
				"summary": "Delete task",
				"parameters": [
					{
						"type": "string",
						"description": "Task ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.MessageResponse"
						}
					},
					"404": {
						"description": "Task not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/tasks/{id}/status": {
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"tasks"
				],
				"summary": "Update task status",
				"parameters": [
					{
						"type": "string",
						"description": "Task ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "New status",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateTaskStatusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Task"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Task not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"analytics.AllocationRow": {
			"type": "object",
			"properties": {
				"asset_class": {
					"$ref": "#/definitions/models.AssetClass"
				},
				"invested": {
					"type": "number"
				},
				"current": {
					"type": "number"
				},
				"weight": {
					"type": "number"
				}
			}
		},
		"analytics.Breakdown": {
			"type": "object",
			"additionalProperties": {
				"$ref": "#/definitions/analytics.Totals"
			}
		},
		"analytics.HoldingPerformance": {
			"type": "object",
			"properties": {
				"holding": {
					"$ref": "#/definitions/models.Holding"
				},
				"invested": {
					"type": "number"
				},
				"current": {
					"type": "number"
				},
				"gain": {
					"type": "number"
				},
				"absolute_return": {
					"type": "number"
				},
				"years": {
					"type": "number"
				},
				"cagr": {
					"type": "number"
				}
			}
		},
		"analytics.PortfolioPerformance": {
			"type": "object",
			"properties": {
				"total_invested": {
					"type": "number"
				},
				"total_current": {
					"type": "number"
				},
				"by_asset_class": {
					"$ref": "#/definitions/analytics.Breakdown"
				},
				"holdings_count": {
					"type": "integer"
				},
				"as_of": {
					"type": "string",
					"format": "date"
				},
				"since": {
					"type": "string",
					"format": "date"
				},
				"days": {
					"type": "integer"
				},
				"gain": {
					"type": "number"
				},
				"absolute_return": {
					"type": "number"
				},
				"cagr": {
					"type": "number"
				},
				"xirr": {
					"type": "number"
				},
				"allocation": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/analytics.AllocationRow"
					}
				},
				"holdings": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/analytics.HoldingPerformance"
					}
				}
			}
		},
		"analytics.Summary": {
			"type": "object",
			"properties": {
				"total_invested": {
					"type": "number"
				},
				"total_current": {
					"type": "number"
				},
				"by_asset_class": {
					"$ref": "#/definitions/analytics.Breakdown"
				},
				"holdings_count": {
					"type": "integer"
				}
			}
		},
		"analytics.Totals": {
			"type": "object",
			"properties": {
				"invested": {
					"type": "number"
				},
				"current": {
					"type": "number"
				}
			}
		},
		"handlers.AuthResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"expires_at": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/services.Actor"
				}
			}
		},
		"handlers.CreateClientRequest": {
			"type": "object",
			"required": [
				"name",
				"company",
				"email"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"company": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"status": {
					"allOf": [
						{
							"$ref": "#/definitions/models.ClientStatus"
						}
					],
					"example": "Lead"
				},
				"segment": {
					"$ref": "#/definitions/models.ClientSegment"
				},
				"owner": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"demat_id": {
					"type": "string"
				}
			}
		},
		"handlers.CreateFolioRequest": {
			"type": "object",
			"required": [
				"folio_number",
				"provider"
			],
			"properties": {
				"folio_number": {
					"type": "string"
				},
				"provider": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			}
		},
		"handlers.CreateHoldingRequest": {
			"type": "object",
			"required": [
				"asset_class",
				"name",
				"units",
				"average_cost",
				"current_price"
			],
			"properties": {
				"asset_class": {
					"allOf": [
						{
							"$ref": "#/definitions/models.AssetClass"
						}
					],
					"example": "Mutual Funds"
				},
				"name": {
					"type": "string"
				},
				"purchase_date": {
					"type": "string",
					"example": "2023-04-01"
				},
				"units": {
					"type": "number"
				},
				"average_cost": {
					"type": "number"
				},
				"current_price": {
					"type": "number"
				},
				"notes": {
					"type": "string"
				}
			}
		},
		"handlers.CreateTaskRequest": {
			"type": "object",
			"required": [
				"title"
			],
			"properties": {
				"client_id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"due_date": {
					"type": "string",
					"example": "2024-06-30"
				},
				"priority": {
					"allOf": [
						{
							"$ref": "#/definitions/models.TaskPriority"
						}
					],
					"example": "Medium"
				},
				"status": {
					"allOf": [
						{
							"$ref": "#/definitions/models.TaskStatus"
						}
					],
					"example": "Pending"
				},
				"assigned_to": {
					"type": "string"
				}
			}
		},
		"handlers.ErrorDetail": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handlers.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"$ref": "#/definitions/handlers.ErrorDetail"
				}
			}
		},
		"handlers.LoginRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"role": {
					"allOf": [
						{
							"$ref": "#/definitions/models.Role"
						}
					],
					"example": "admin"
				}
			}
		},
		"handlers.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"handlers.NoteRequest": {
			"type": "object",
			"required": [
				"content"
			],
			"properties": {
				"content": {
					"type": "string"
				}
			}
		},
		"handlers.UpdateClientRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"company": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"status": {
					"$ref": "#/definitions/models.ClientStatus"
				},
				"segment": {
					"$ref": "#/definitions/models.ClientSegment"
				},
				"owner": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"demat_id": {
					"type": "string"
				}
			}
		},
		"handlers.UpdateFolioRequest": {
			"type": "object",
			"properties": {
				"folio_number": {
					"type": "string"
				},
				"provider": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			}
		},
		"handlers.UpdateHoldingRequest": {
			"type": "object",
			"properties": {
				"asset_class": {
					"$ref": "#/definitions/models.AssetClass"
				},
				"name": {
					"type": "string"
				},
				"purchase_date": {
					"type": "string"
				},
				"units": {
					"type": "number"
				},
				"average_cost": {
					"type": "number"
				},
				"current_price": {
					"type": "number"
				},
				"notes": {
					"type": "string"
				}
			}
		},
		"handlers.UpdatePriceRequest": {
			"type": "object",
			"required": [
				"current_price"
			],
			"properties": {
				"current_price": {
					"type": "number"
				}
			}
		},
		"handlers.UpdateTaskRequest": {
			"type": "object",
			"properties": {
				"client_id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"due_date": {
					"type": "string"
				},
				"priority": {
					"$ref": "#/definitions/models.TaskPriority"
				},
				"status": {
					"$ref": "#/definitions/models.TaskStatus"
				},
				"assigned_to": {
					"type": "string"
				}
			}
		},
		"handlers.UpdateTaskStatusRequest": {
			"type": "object",
			"required": [
				"status"
			],
			"properties": {
				"status": {
					"$ref": "#/definitions/models.TaskStatus"
				}
			}
		},
		"models.AssetClass": {
			"type": "string",
			"enum": [
				"Stocks",
				"Mutual Funds",
				"Fixed Deposits",
				"Bonds",
				"PMS",
				"AIF"
			],
			"x-enum-varnames": [
				"AssetClassStocks",
				"AssetClassMutualFunds",
				"AssetClassFixedDeposits",
				"AssetClassBonds",
				"AssetClassPMS",
				"AssetClassAIF"
			]
		},
		"models.Client": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"company": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"status": {
					"$ref": "#/definitions/models.ClientStatus"
				},
				"segment": {
					"$ref": "#/definitions/models.ClientSegment"
				},
				"owner": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"demat_id": {
					"type": "string"
				},
				"last_contact": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"models.ClientSegment": {
			"type": "string",
			"enum": [
				"Salaried millennials in metro, Tier-1 cities",
				"Salaried millennials in Tier-2+ cities",
				"Salaried Gen Z",
				"Salaried Gen X in Tier-1, Tier-2+ cities",
				"Self-employed professionals",
				"Gen Z student",
				"Business owner"
			]
		},
		"models.ClientStatus": {
			"type": "string",
			"enum": [
				"Lead",
				"Active",
				"Inactive",
				"Churned"
			],
			"x-enum-varnames": [
				"ClientStatusLead",
				"ClientStatusActive",
				"ClientStatusInactive",
				"ClientStatusChurned"
			]
		},
		"models.Folio": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"client_id": {
					"type": "string"
				},
				"folio_number": {
					"type": "string"
				},
				"provider": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			}
		},
		"models.Holding": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"client_id": {
					"type": "string"
				},
				"asset_class": {
					"$ref": "#/definitions/models.AssetClass"
				},
				"name": {
					"type": "string"
				},
				"purchase_date": {
					"type": "string",
					"format": "date"
				},
				"units": {
					"type": "number"
				},
				"average_cost": {
					"type": "number"
				},
				"current_price": {
					"type": "number"
				},
				"notes": {
					"type": "string"
				},
				"price_history": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.PricePoint"
					}
				}
			}
		},
		"models.Note": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"client_id": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"created_by": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"models.PricePoint": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string",
					"format": "date"
				},
				"price": {
					"type": "number"
				}
			}
		},
		"models.Role": {
			"type": "string",
			"enum": [
				"admin",
				"staff"
			],
			"x-enum-varnames": [
				"RoleAdmin",
				"RoleStaff"
			]
		},
		"models.Task": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"client_id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"due_date": {
					"type": "string",
					"format": "date"
				},
				"priority": {
					"$ref": "#/definitions/models.TaskPriority"
				},
				"status": {
					"$ref": "#/definitions/models.TaskStatus"
				},
				"assigned_to": {
					"type": "string"
				}
			}
		},
		"models.TaskPriority": {
			"type": "string",
			"enum": [
				"Low",
				"Medium",
				"High"
			],
			"x-enum-varnames": [
				"TaskPriorityLow",
				"TaskPriorityMedium",
				"TaskPriorityHigh"
			]
		},
		"models.TaskStatus": {
			"type": "string",
			"enum": [
				"Pending",
				"In Progress",
				"Completed"
			],
			"x-enum-varnames": [
				"TaskStatusPending",
				"TaskStatusInProgress",
				"TaskStatusCompleted"
			]
		},
		"pagination.PageResponse-models_Client": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Client"
					}
				},
				"page": {
					"type": "integer"
				},
				"page_size": {
					"type": "integer"
				},
				"total_items": {
					"type": "integer"
				},
				"total_pages": {
					"type": "integer"
				}
			}
		},
		"pagination.PageResponse-models_Task": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Task"
					}
				},
				"page": {
					"type": "integer"
				},
				"page_size": {
					"type": "integer"
				},
				"total_items": {
					"type": "integer"
				},
				"total_pages": {
					"type": "integer"
				}
			}
		},
		"services.Actor": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"role": {
					"$ref": "#/definitions/models.Role"
				}
			}
		},
		"services.Dashboard": {
			"type": "object",
			"properties": {
				"total_clients": {
					"type": "integer"
				},
				"active_clients": {
					"type": "integer"
				},
				"new_leads": {
					"type": "integer"
				},
				"pending_tasks": {
					"type": "integer"
				},
				"status_distribution": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/services.StatusCount"
					}
				},
				"recent_clients": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Client"
					}
				},
				"upcoming_tasks": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Task"
					}
				}
			}
		},
		"services.ImportResult": {
			"type": "object",
			"properties": {
				"imported": {
					"type": "integer"
				},
				"skipped": {
					"type": "integer"
				},
				"clients": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Client"
					}
				}
			}
		},
		"services.StatusCount": {
			"type": "object",
			"properties": {
				"status": {
					"$ref": "#/definitions/models.ClientStatus"
				},
				"count": {
					"type": "integer"
				}
			}
		},
		"services.TaskColumn": {
			"type": "object",
			"properties": {
				"status": {
					"$ref": "#/definitions/models.TaskStatus"
				},
				"tasks": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Task"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "WealthDesk API",
	Description:      "WealthDesk is a client relationship and portfolio reporting service for a wealth management desk.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
