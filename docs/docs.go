// Package docs 由 swag init 根据控制器注解生成，修改注解后需重新生成。
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
        "/api/v1/mp-hub/cards": {
            "post": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "创建卡券",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "批量查询卡券",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "name": "offset",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "name": "count",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "name": "status",
                        "in": "query"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/code/consume": {
            "post": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "核销卡券 code",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/code/decrypt": {
            "post": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "解码卡券 code",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/code/get": {
            "post": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "查询卡券 code",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/code/unavailable": {
            "post": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "设置卡券 code 失效",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/code/update": {
            "post": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "更改卡券 code",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/landingpage": {
            "post": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "创建卡券货架",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/membercard/activate": {
            "post": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "激活会员卡",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/membercard/trade": {
            "post": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "更新会员信息",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/stock": {
            "post": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "修改卡券库存",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/testwhitelist": {
            "post": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "设置卡券测试白名单",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/ticket-holder": {
            "post": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "更新票券持有人信息",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/update": {
            "post": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "更新卡券信息",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/user-cards": {
            "get": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "查询用户卡券",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "openid",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "card_id",
                        "in": "query",
                        "required": false
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/cards/{cardID}": {
            "get": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "查询卡券详情",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "cardID",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "卡券管理"
                ],
                "summary": "删除卡券",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "cardID",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/jssdk/card-ext": {
            "get": {
                "tags": [
                    "JS-SDK"
                ],
                "summary": "获取添加卡券的 cardExt",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "card_id",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "code",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "openid",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/api/v1/mp-hub/jssdk/choose-card": {
            "get": {
                "tags": [
                    "JS-SDK"
                ],
                "summary": "获取拉起卡券列表的参数",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "card_id",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "card_type",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "shop_id",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/api/v1/mp-hub/jssdk/config": {
            "get": {
                "tags": [
                    "JS-SDK"
                ],
                "summary": "获取 wx.config 配置",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "url",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "apis",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "boolean",
                        "name": "debug",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "boolean",
                        "name": "beta",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/api/v1/mp-hub/jssdk/signature": {
            "get": {
                "tags": [
                    "JS-SDK"
                ],
                "summary": "获取 JS-SDK 签名包",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "url",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/api/v1/mp-hub/jssdk/ticket": {
            "get": {
                "tags": [
                    "JS-SDK"
                ],
                "summary": "获取 ticket",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "type",
                        "in": "query",
                        "enum": [
                            "jsapi",
                            "wx_card"
                        ]
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/notices": {
            "post": {
                "tags": [
                    "模板消息"
                ],
                "summary": "发送模板消息",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/notices/industry": {
            "post": {
                "tags": [
                    "模板消息"
                ],
                "summary": "设置所属行业",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/mp-hub/notices/templates": {
            "get": {
                "tags": [
                    "模板消息"
                ],
                "summary": "获取模板列表",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "模板消息"
                ],
                "summary": "添加模板",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "请求参数无效"
                    },
                    "502": {
                        "description": "微信接口错误"
                    },
                    "401": {
                        "description": "服务令牌无效"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8082",
	BasePath:         "",
	Schemes:          []string{"http", "https"},
	Title:            "MP Hub API",
	Description:      "公众号 JS-SDK 签名、卡券与模板消息服务 API 文档",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
