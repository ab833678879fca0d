package main

import (
	"net/http"
	"sync"

	"github.com/km-arc/go-livewire/framework/app"
	gohttp "github.com/km-arc/go-livewire/framework/http"
	"github.com/km-arc/go-livewire/framework/livewire"
	"github.com/km-arc/go-livewire/framework/routing"
	"github.com/km-arc/go-livewire/framework/validation"
)

// Author is a model bound to the form. Rules scoped under "author" display
// only the trailing field name in messages.
type Author struct {
	ID    int
	Name  string
	Email string
}

func (a *Author) ModelKey() any { return a.ID }

func (a *Author) ToArray() map[string]any {
	return map[string]any{"id": a.ID, "name": a.Name, "email": a.Email}
}

// ContactForm is a stateful component whose fields are validated
// declaratively, Livewire-style.
type ContactForm struct {
	livewire.BaseComponent

	Name   string
	Email  string
	Items  []map[string]any
	Author *Author
}

func NewContactForm() *ContactForm {
	return &ContactForm{
		BaseComponent: livewire.NewBaseComponent("contact-form"),
		Author:        &Author{ID: 1},
	}
}

func (f *ContactForm) Snapshot() map[string]any {
	return map[string]any{
		"name":   f.Name,
		"email":  f.Email,
		"items":  f.Items,
		"author": f.Author,
	}
}

func (f *ContactForm) Rules() validation.Rules {
	return validation.Rules{
		"name":         "required|min:2|max:100",
		"email":        "required|email",
		"items.*.name": "required|min:2",
		"author.email": "required|email",
	}
}

func (f *ContactForm) Messages() validation.Messages {
	return validation.Messages{
		"email.required": "We need your email address.",
	}
}

func main() {
	application := app.New() // loads .env automatically

	form := NewContactForm()
	validator := livewire.NewValidator(form)
	var mu sync.Mutex // one shared form instance; validation calls must not interleave

	application.Router().Prefix("/api/v1", func(api *routing.Router) {

		// Full validation of the whole form state.
		api.Post("/contact", func(w http.ResponseWriter, r *http.Request) {
			req := gohttp.NewRequest(r)
			res := gohttp.NewResponse(w)

			var body struct {
				Name  string           `json:"name"`
				Email string           `json:"email"`
				Items []map[string]any `json:"items"`
			}
			if err := req.Bind(&body); err != nil {
				res.Error(http.StatusBadRequest, err.Error())
				return
			}

			mu.Lock()
			defer mu.Unlock()

			form.Name, form.Email, form.Items = body.Name, body.Email, body.Items
			form.Author.Email = body.Email

			validated, err := validator.Validate()
			if err != nil {
				if verr := livewire.AsValidationError(err); verr != nil {
					res.ValidationError(verr.Bag)
					return
				}
				res.ServerError(err.Error())
				return
			}
			res.Created(validated)
		})

		// Partial validation after a single field update: errors on other
		// fields stay in the bag.
		api.Patch("/contact/{field}", func(w http.ResponseWriter, r *http.Request) {
			req := gohttp.NewRequest(r)
			res := gohttp.NewResponse(w)
			field := routing.Param(r, "field")

			var body struct {
				Value string `json:"value"`
			}
			if err := req.Bind(&body); err != nil {
				res.Error(http.StatusBadRequest, err.Error())
				return
			}

			mu.Lock()
			defer mu.Unlock()

			switch field {
			case "name":
				form.Name = body.Value
			case "email":
				form.Email = body.Value
			default:
				res.NotFound("Unknown field.")
				return
			}

			if validator.MissingRuleFor(field) {
				res.Success(map[string]any{"field": field, "validated": false})
				return
			}

			if _, err := validator.ValidateOnly(field); err != nil {
				if verr := livewire.AsValidationError(err); verr != nil {
					res.ValidationError(verr.Bag)
					return
				}
				res.ServerError(err.Error())
				return
			}
			res.Success(map[string]any{
				"field":  field,
				"errors": validator.ErrorBag(),
			})
		})

		// Current error bag.
		api.Get("/contact/errors", func(w http.ResponseWriter, r *http.Request) {
			res := gohttp.NewResponse(w)
			mu.Lock()
			defer mu.Unlock()
			res.Success(map[string]any{"errors": validator.ErrorBag()})
		})
	})

	application.Run()
}
