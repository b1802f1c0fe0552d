package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/edusupport/edusupport/internal/catalog"
	"github.com/edusupport/edusupport/internal/server/service"
	"github.com/edusupport/edusupport/pkg/authsdk"
	"github.com/edusupport/edusupport/pkg/httpx"
	"github.com/edusupport/edusupport/pkg/slogx"
)

type SubjectsHandler struct {
	CatalogService *service.CatalogService
}

// HandleList godoc
//
//	@Summary		List subjects
//	@Description	Returns all subjects available in the course catalog.
//	@Tags			Subjects
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		authsdk.Subject			"Subject listing"
//	@Failure		401	{object}	authsdk.ErrorResponse	"Invalid or missing session token"
//	@Router			/v1/subjects [get].
func (h *SubjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	subjects := h.CatalogService.Subjects(r.Context())

	out := make([]authsdk.Subject, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, authsdk.Subject(s))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDetail godoc
//
//	@Summary		Get subject detail
//	@Description	Returns a subject's modules with the caller's completion state.
//	@Tags			Subjects
//	@Security		BearerAuth
//	@Produce		json
//	@Param			slug	path		string					true	"Subject slug"
//	@Success		200		{object}	authsdk.SubjectDetail	"Subject detail"
//	@Failure		401		{object}	authsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		404		{object}	authsdk.ErrorResponse	"Unknown subject"
//	@Router			/v1/subjects/{slug} [get].
func (h *SubjectsHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		authsdk.ErrInvalidToken.WriteError(w)
		return
	}

	detail, err := h.CatalogService.SubjectDetail(ctx, userID, r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrSubjectNotFound) {
			authsdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to load subject detail", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	modules := make([]authsdk.Module, 0, len(detail.Modules))
	for _, m := range detail.Modules {
		modules = append(modules, authsdk.Module(m))
	}
	httpx.WriteJSON(w, http.StatusOK, authsdk.SubjectDetail{
		SubjectName: detail.SubjectName,
		Modules:     modules,
	})
}

// HandleModuleContent godoc
//
//	@Summary		Get module content
//	@Description	Returns the audio lesson and transcript for a module.
//	@Tags			Subjects
//	@Security		BearerAuth
//	@Produce		json
//	@Param			slug		path		string					true	"Subject slug"
//	@Param			moduleID	path		string					true	"Module id"
//	@Success		200			{object}	authsdk.ModuleContent	"Module content"
//	@Failure		401			{object}	authsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		404			{object}	authsdk.ErrorResponse	"Unknown module"
//	@Router			/v1/subjects/{slug}/modules/{moduleID} [get].
func (h *SubjectsHandler) HandleModuleContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	content, err := h.CatalogService.ModuleContent(ctx, r.PathValue("moduleID"))
	if err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			authsdk.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to load module content", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.ModuleContent(content))
}

// HandleComplete godoc
//
//	@Summary		Mark module completed
//	@Description	Records that the authenticated user finished a module. Idempotent.
//	@Tags			Subjects
//	@Security		BearerAuth
//	@Produce		json
//	@Param			moduleID	path		string						true	"Module id"
//	@Success		200			{object}	authsdk.CompleteResponse	"message"
//	@Failure		401			{object}	authsdk.ErrorResponse		"Invalid or missing session token"
//	@Failure		404			{object}	authsdk.ErrorResponse		"Unknown module"
//	@Router			/v1/subjects/modules/{moduleID}/complete [post].
func (h *SubjectsHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		authsdk.ErrInvalidToken.WriteError(w)
		return
	}

	moduleID := r.PathValue("moduleID")
	if err := h.CatalogService.MarkCompleted(ctx, userID, moduleID); err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			authsdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to mark module completed", "module_id", moduleID, "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.CompleteResponse{
		Message: fmt.Sprintf("Módulo %s marcado como completado.", moduleID),
	})
}
