package rest

import (
	"net/http"

	"github.com/KretovDmitry/canang-orders/internal/application/interfaces"
	"github.com/KretovDmitry/canang-orders/internal/application/params"
	"github.com/KretovDmitry/canang-orders/internal/interface/api/rest/header"
	"github.com/KretovDmitry/canang-orders/internal/interface/api/rest/request"
	"github.com/KretovDmitry/canang-orders/internal/interface/view"
	"github.com/KretovDmitry/canang-orders/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type OrderController struct {
	service  interfaces.OrderService
	revenue  interfaces.RevenueService
	renderer *view.Renderer
	logger   logger.Logger
}

// NewOrderController registers http.Handlers with additional options.
func NewOrderController(
	service interfaces.OrderService,
	revenue interfaces.RevenueService,
	renderer *view.Renderer,
	logger logger.Logger,
	options ChiServerOptions,
) {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}

	c := OrderController{
		service:  service,
		revenue:  revenue,
		renderer: renderer,
		logger:   logger,
	}

	r.Group(func(r chi.Router) {
		for _, middleware := range options.Middlewares {
			r.Use(middleware)
		}
		r.Get(options.BaseURL+"/", c.Index)
		r.Post(options.BaseURL+"/orders", c.CreateOrder)
		r.Put(options.BaseURL+"/orders/done/{id}", c.MarkDone)
		r.Get(options.BaseURL+"/orders/edit/{id}", c.EditForm)
		r.Put(options.BaseURL+"/orders/update/{id}", c.UpdateOrder)
		r.Get(options.BaseURL+"/orders/cancel-edit/{id}", c.CancelEdit)
		r.Get(options.BaseURL+"/total-pendapatan", c.TotalRevenue)
	})
}

// Main page with active orders and the revenue (GET / HTTP/1.1).
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	const message = "Gagal memuat data"

	orders, err := c.service.GetOrders(r.Context())
	if err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
		return
	}

	total, err := c.revenue.TotalRevenue(r.Context())
	if err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
		return
	}

	header.SetHTML(w)

	if err = c.renderer.Index(w, orders, total); err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
	}
}

// Create new order (POST /orders HTTP/1.1).
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	const message = "Gagal menambah pesanan"

	form, err := request.NewOrderForm(r)
	if err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	// Create selfvalidating parameters.
	p, err := params.NewCreateOrder(form.CustomerName, form.ItemType, form.Quantity, form.UnitPrice)
	if err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	order, err := c.service.CreateOrder(r.Context(), p)
	if err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
		return
	}

	header.TriggerUpdateTotal(w)
	header.SetHTML(w)

	if err = c.renderer.OrderItem(w, order); err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
	}
}

// Mark order as done (PUT /orders/done/{id} HTTP/1.1).
func (c *OrderController) MarkDone(w http.ResponseWriter, r *http.Request) {
	const message = "Gagal update"

	id, err := params.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	order, err := c.service.MarkDone(r.Context(), id)
	if err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
		return
	}

	header.TriggerUpdateTotal(w)
	header.SetHTML(w)

	if err = c.renderer.OrderItem(w, order); err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
	}
}

// Edit form of an order (GET /orders/edit/{id} HTTP/1.1).
func (c *OrderController) EditForm(w http.ResponseWriter, r *http.Request) {
	const message = "Gagal memuat data"

	id, err := params.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	order, err := c.service.GetOrder(r.Context(), id)
	if err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
		return
	}

	header.SetHTML(w)

	if err = c.renderer.OrderEditForm(w, order); err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
	}
}

// Apply edits (PUT /orders/update/{id} HTTP/1.1).
func (c *OrderController) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	const message = "Gagal update data"

	id, err := params.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	form, err := request.NewOrderForm(r)
	if err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	p, err := params.NewUpdateOrder(id, form.CustomerName, form.ItemType, form.Quantity, form.UnitPrice)
	if err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	order, err := c.service.UpdateOrder(r.Context(), p)
	if err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
		return
	}

	header.TriggerUpdateTotal(w)
	header.SetHTML(w)

	if err = c.renderer.OrderItem(w, order); err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
	}
}

// Leave the edit form untouched (GET /orders/cancel-edit/{id} HTTP/1.1).
func (c *OrderController) CancelEdit(w http.ResponseWriter, r *http.Request) {
	const message = "Gagal memuat data"

	id, err := params.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	order, err := c.service.GetOrder(r.Context(), id)
	if err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
		return
	}

	header.SetHTML(w)

	if err = c.renderer.OrderItem(w, order); err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
	}
}

// Revenue of done orders as text (GET /total-pendapatan HTTP/1.1).
func (c *OrderController) TotalRevenue(w http.ResponseWriter, r *http.Request) {
	total, err := c.revenue.TotalRevenue(r.Context())
	if err != nil {
		c.ErrorHandlerFunc(w, r, fail("Gagal memuat data", err))
		return
	}

	header.SetText(w)

	_, _ = w.Write([]byte(view.Rupiah(total)))
}

// ErrorHandlerFunc writes the error as plain text with the matching status code.
func (c *OrderController) ErrorHandlerFunc(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, c.logger, "order", err)
}
