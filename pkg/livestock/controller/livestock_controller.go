package controller

import "github.com/labstack/echo/v4"

type LivestockController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Patch(c echo.Context) error
	Delete(c echo.Context) error
}
