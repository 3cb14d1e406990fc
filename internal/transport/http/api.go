package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"formquiz-service/internal/app"
	"formquiz-service/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
)

const maxImageBytes = 10 << 20

var validate = validator.New()

// API serves the REST endpoints for form generation and attempt history.
type API struct {
	forms   *app.FormService
	quizzes *app.QuizService
}

func NewAPI(forms *app.FormService, quizzes *app.QuizService) *API {
	return &API{forms: forms, quizzes: quizzes}
}

// NewRouter mounts the REST API and the live session websocket.
func NewRouter(api *API, ws *WSHandler, corsOrigins []string) http.Handler {
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ws", ws.ServeWS)

	r.Route("/api", func(ar chi.Router) {
		ar.Use(middleware.Logger)
		ar.Use(middleware.Timeout(90 * time.Second))
		ar.Post("/forms/generate", api.generateForm)
		ar.Post("/forms/generate/url", api.generateFormFromURL)
		ar.Post("/forms/generate/similar", api.generateSimilarForm)
		ar.Post("/forms/optimize", api.optimizeForms)
		ar.Get("/forms/{id}", api.getForm)
		ar.Post("/questions/generate", api.generateQuestions)
		ar.Post("/questions/generate/image", api.generateImageQuestions)
		ar.Get("/quizzes/{id}/attempts", api.listAttempts)
		ar.Post("/quizzes/{id}/reload", api.reloadQuiz)
	})
	return r
}

type generateRequest struct {
	Content  string `json:"content" validate:"required"`
	FormType string `json:"formType"`
}

type generateURLRequest struct {
	URL      string `json:"url" validate:"required,url"`
	FormType string `json:"formType"`
}

type similarRequest struct {
	Reference    domain.GeneratedForm `json:"reference"`
	Instructions string               `json:"instructions"`
}

type optimizeRequest struct {
	Forms []domain.GeneratedForm `json:"forms" validate:"required,min=1"`
}

type questionsRequest struct {
	Topic string `json:"topic" validate:"required"`
	Count int    `json:"count" validate:"gte=0"`
}

func (a *API) generateForm(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decode(w, r, &req) {
		return
	}
	stored, err := a.forms.Generate(r.Context(), req.Content, req.FormType)
	respondForm(w, stored, err)
}

func (a *API) generateFormFromURL(w http.ResponseWriter, r *http.Request) {
	var req generateURLRequest
	if !decode(w, r, &req) {
		return
	}
	stored, err := a.forms.GenerateFromURL(r.Context(), req.URL, req.FormType)
	respondForm(w, stored, err)
}

func (a *API) generateSimilarForm(w http.ResponseWriter, r *http.Request) {
	var req similarRequest
	if !decode(w, r, &req) {
		return
	}
	stored, err := a.forms.GenerateSimilar(r.Context(), req.Reference, req.Instructions)
	respondForm(w, stored, err)
}

func (a *API) optimizeForms(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"forms": a.forms.Optimize(r.Context(), req.Forms)})
}

func (a *API) getForm(w http.ResponseWriter, r *http.Request) {
	stored, err := a.forms.Form(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrNotFound) {
		writeErr(w, http.StatusNotFound, "form not found")
		return
	}
	if err != nil {
		log.Printf("load form: %v", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (a *API) generateQuestions(w http.ResponseWriter, r *http.Request) {
	var req questionsRequest
	if !decode(w, r, &req) {
		return
	}
	questions, err := a.forms.QuizQuestions(r.Context(), req.Topic, req.Count)
	respondQuestions(w, questions, err)
}

func (a *API) generateImageQuestions(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes+1<<20)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	f, _, err := r.FormFile("image")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "missing image")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "unreadable image")
		return
	}
	count := 0
	if raw := r.FormValue("count"); raw != "" {
		if count, err = strconv.Atoi(raw); err != nil || count < 0 {
			writeErr(w, http.StatusBadRequest, "invalid count")
			return
		}
	}
	questions, err := a.forms.QuestionsFromImage(r.Context(), data, count)
	respondQuestions(w, questions, err)
}

func (a *API) listAttempts(w http.ResponseWriter, r *http.Request) {
	attempts, err := a.quizzes.Attempts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Printf("list attempts: %v", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"attempts": attempts})
}

type reloadResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"questionCount"`
	Available     bool   `json:"available"`
}

func (a *API) reloadQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := a.quizzes.ReloadQuiz(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrQuizNotFound) {
		writeErr(w, http.StatusNotFound, "quiz not found")
		return
	}
	if err != nil {
		log.Printf("reload quiz: %v", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, reloadResponse{
		ID:            quiz.ID,
		Title:         quiz.Title,
		QuestionCount: len(quiz.Questions),
		Available:     quiz.Available(time.Now()),
	})
}

type formResponse struct {
	domain.StoredForm
	Saved bool `json:"saved"`
}

// respondForm always answers with the form. When the save failed the id is
// blanked, since it cannot be fetched later.
func respondForm(w http.ResponseWriter, stored domain.StoredForm, err error) {
	if err != nil {
		log.Printf("generate form: %v", err)
		stored.ID = ""
	}
	writeJSON(w, http.StatusOK, formResponse{StoredForm: stored, Saved: err == nil})
}

func respondQuestions(w http.ResponseWriter, questions []domain.QuizQuestion, err error) {
	if errors.Is(err, domain.ErrGenerationFailed) {
		writeErr(w, http.StatusBadGateway, "generation failed")
		return
	}
	if err != nil {
		log.Printf("generate questions: %v", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResp struct {
	Error string `json:"error"`
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errResp{Error: msg})
}
