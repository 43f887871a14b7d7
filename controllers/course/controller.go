package controllers

import "eduequi/catalog"

// Controller serves the course, lesson and quiz endpoints.
type Controller struct {
	Cat *catalog.Catalog
}

func New(cat *catalog.Catalog) *Controller {
	return &Controller{Cat: cat}
}
