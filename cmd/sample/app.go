package main

import (
	"errors"
	"fmt"

	"github.com/sunbreeze/sunbreeze"
)

// newApp builds the sample application and registers its routes.
func newApp(opts ...sunbreeze.Option) (*sunbreeze.App, error) {
	app := sunbreeze.New(opts...)

	// Renders templates/index.html from the working directory; without one
	// the render error surfaces through the error boundary.
	templatePage := func(_ *sunbreeze.Request, resp *sunbreeze.Response, _ sunbreeze.Params) error {
		body, err := app.Render("index.html", map[string]any{
			"Title": "Sunbreeze",
			"Name":  "World",
		})
		if err != nil {
			return err
		}
		resp.HTML(body)
		return nil
	}

	regs := []error{
		app.HandleFunc("/home", home, sunbreeze.WithRouteName("home")),
		app.HandleFunc("/about", about, sunbreeze.WithRouteName("about")),
		app.HandleFunc("/hello/{name}", greeting, sunbreeze.WithRouteName("greeting")),
		app.HandleFunc("/template", templatePage),
		app.HandleFunc("/boom", boom),
		app.Handle("/book", books{}, sunbreeze.WithRouteName("books")),
	}
	if err := errors.Join(regs...); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	return app, nil
}

func home(_ *sunbreeze.Request, resp *sunbreeze.Response, _ sunbreeze.Params) error {
	resp.Text("Hello, World!")
	return nil
}

func about(_ *sunbreeze.Request, resp *sunbreeze.Response, _ sunbreeze.Params) error {
	resp.Text("About Sunbreeze")
	return nil
}

func greeting(_ *sunbreeze.Request, resp *sunbreeze.Response, params sunbreeze.Params) error {
	resp.Text("Hello, " + params["name"])
	return nil
}

func boom(_ *sunbreeze.Request, _ *sunbreeze.Response, _ sunbreeze.Params) error {
	return errors.New("an error occurred")
}

// books is a resource handler: one operation per HTTP method.
type books struct{}

func (books) Get(_ *sunbreeze.Request, resp *sunbreeze.Response, _ sunbreeze.Params) error {
	resp.Text("Books Page")
	return nil
}

func (books) Post(_ *sunbreeze.Request, resp *sunbreeze.Response, _ sunbreeze.Params) error {
	resp.SetStatus(201)
	resp.Text("Book created")
	return nil
}
