package chat

import "github.com/labstack/echo/v4"

type Handler interface {
	SendMessage() echo.HandlerFunc
	GetChat() echo.HandlerFunc
	ListChats() echo.HandlerFunc
	DeleteChat() echo.HandlerFunc
}
