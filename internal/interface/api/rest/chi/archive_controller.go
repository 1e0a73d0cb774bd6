package rest

import (
	"errors"
	"net/http"

	"github.com/KretovDmitry/canang-orders/internal/application/errs"
	"github.com/KretovDmitry/canang-orders/internal/application/interfaces"
	"github.com/KretovDmitry/canang-orders/internal/application/params"
	"github.com/KretovDmitry/canang-orders/internal/interface/api/rest/header"
	"github.com/KretovDmitry/canang-orders/internal/interface/view"
	"github.com/KretovDmitry/canang-orders/pkg/limiter"
	"github.com/KretovDmitry/canang-orders/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ArchiveController struct {
	service  interfaces.ArchiveService
	renderer *view.Renderer
	logger   logger.Logger
}

// NewArchiveController registers http.Handlers with additional options.
// Print and reset is throttled by resetLimiter when it is not nil.
func NewArchiveController(
	service interfaces.ArchiveService,
	renderer *view.Renderer,
	resetLimiter *limiter.Limiter,
	logger logger.Logger,
	options ChiServerOptions,
) {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}

	c := ArchiveController{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}

	r.Group(func(r chi.Router) {
		for _, middleware := range options.Middlewares {
			r.Use(middleware)
		}
		if resetLimiter != nil {
			r.With(resetLimiter.Middleware).Get(options.BaseURL+"/print-reset", c.PrintReset)
		} else {
			r.Get(options.BaseURL+"/print-reset", c.PrintReset)
		}
		r.Get(options.BaseURL+"/history", c.History)
		r.Get(options.BaseURL+"/history/print/{id}", c.Reprint)
		r.Delete(options.BaseURL+"/history/{id}", c.DeleteArchive)
	})
}

// Archive done orders and print the summary (GET /print-reset HTTP/1.1).
func (c *ArchiveController) PrintReset(w http.ResponseWriter, r *http.Request) {
	const message = "Gagal reset"

	archive, err := c.service.ArchiveAndReset(r.Context())
	if err != nil {
		// Nothing was done yet, back to the orders.
		if errors.Is(err, errs.ErrNothingToArchive) {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		c.ErrorHandlerFunc(w, r, fail(message, err))
		return
	}

	header.SetHTML(w)

	// The archive is committed, a render failure does not undo it.
	if err = c.renderer.Print(w, archive, false); err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
	}
}

// List archives (GET /history HTTP/1.1).
func (c *ArchiveController) History(w http.ResponseWriter, r *http.Request) {
	const message = "Gagal memuat data"

	archives, err := c.service.GetArchives(r.Context())
	if err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
		return
	}

	header.SetHTML(w)

	if err = c.renderer.History(w, archives); err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
	}
}

// Print a past archive again (GET /history/print/{id} HTTP/1.1).
func (c *ArchiveController) Reprint(w http.ResponseWriter, r *http.Request) {
	const message = "Gagal cetak ulang"

	id, err := params.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	archive, err := c.service.GetArchive(r.Context(), id)
	if err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
		return
	}

	header.SetHTML(w)

	if err = c.renderer.Print(w, archive, true); err != nil {
		c.ErrorHandlerFunc(w, r, fail(message, err))
	}
}

// Delete an archive (DELETE /history/{id} HTTP/1.1).
// The empty body makes htmx drop the row.
func (c *ArchiveController) DeleteArchive(w http.ResponseWriter, r *http.Request) {
	id, err := params.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		c.ErrorHandlerFunc(w, r, err)
		return
	}

	if err = c.service.DeleteArchive(r.Context(), id); err != nil {
		c.ErrorHandlerFunc(w, r, fail("Gagal menghapus riwayat", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *ArchiveController) ErrorHandlerFunc(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, c.logger, "archive", err)
}
