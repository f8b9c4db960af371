// Package docs registra la especificación Swagger de la API.
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
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Estado del servicio",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}}
                }
            }
        },
        "/api/contacts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Listar solicitudes de contacto",
                "parameters": [
                    {"enum": ["new", "in_progress", "resolved", "closed"], "type": "string", "description": "Filtro por estado", "name": "status", "in": "query"},
                    {"type": "integer", "default": 50, "description": "Límite", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Enviar formulario de contacto",
                "parameters": [
                    {"description": "Datos del formulario", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.Envelope"}}
                }
            }
        },
        "/api/contacts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Obtener solicitud por ID",
                "parameters": [
                    {"type": "integer", "description": "ID de la solicitud", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.Envelope"}}
                }
            }
        },
        "/api/contacts/{id}/status": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Cambiar estado de una solicitud",
                "parameters": [
                    {"type": "integer", "description": "ID de la solicitud", "name": "id", "in": "path", "required": true},
                    {"description": "Nuevo estado", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.Envelope"}}
                }
            }
        },
        "/api/company_info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["company"],
                "summary": "Datos de contacto de la empresa",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}}
                }
            }
        },
        "/api/social_media": {
            "get": {
                "produces": ["application/json"],
                "tags": ["company"],
                "summary": "Redes sociales activas",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}}
                }
            }
        },
        "/api/locations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Oficinas activas",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}}
                }
            }
        },
        "/api/locations/main": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Oficina principal",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "dto.Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "dto.CreateContactRequest": {
            "type": "object",
            "required": ["firstName", "lastName", "email", "message"],
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "companyName": {"type": "string"},
                "serviceType": {"type": "string"},
                "message": {"type": "string"},
                "preferredMethod": {"type": "string", "default": "email"}
            }
        },
        "dto.UpdateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "id": {"type": "integer"},
                "status": {"type": "string", "enum": ["new", "in_progress", "resolved", "closed"]}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BD Enterprises API",
	Description:      "Formulario de contacto y datos públicos de la empresa.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
