package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/moodboard-ai/api/internal/auth"
	"github.com/moodboard-ai/api/internal/db"
	"github.com/moodboard-ai/api/internal/mood"
	"github.com/moodboard-ai/api/internal/playlist"
	"github.com/moodboard-ai/api/internal/summary"
	"github.com/moodboard-ai/api/internal/trends"
)

// Query window defaults.
const (
	defaultEntryLimit = 50
	summaryWindowDays = 7
	trendsWindowDays  = 30
)

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	analyzer  *mood.Analyzer
	playlists *playlist.Service
	summaries *summary.Service
	auth      *auth.Service
	database  *db.DB
	logger    *zap.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(analyzer *mood.Analyzer, playlists *playlist.Service, summaries *summary.Service, authService *auth.Service, database *db.DB, logger *zap.Logger) *Handlers {
	return &Handlers{
		analyzer:  analyzer,
		playlists: playlists,
		summaries: summaries,
		auth:      authService,
		database:  database,
		logger:    logger,
	}
}

// ----------------------------------------------------------------------------
// Request / response shapes
// ----------------------------------------------------------------------------

type analyzeRequest struct {
	Text string `json:"text"`
}

type registerRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

type playlistRequest struct {
	Analysis mood.Profile `json:"analysis"`
	Limit    int          `json:"limit"`
}

type entryResponse struct {
	ID          int64     `json:"id"`
	TextContent string    `json:"text_content"`
	mood.Profile
	CreatedAt time.Time `json:"created_at"`
}

type trendsResponse struct {
	Eras         []trends.Era `json:"eras"`
	OutlierCount int          `json:"outlier_count"`
	TotalEntries int          `json:"total_entries"`
}

func toUserResponse(u *db.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ----------------------------------------------------------------------------
// Service handlers
// ----------------------------------------------------------------------------

// Root handles GET /.
func (h *Handlers) Root(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "MoodBoard AI API",
		"status":  "running",
	})
}

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "moodboard-ai",
	})
}

// AuthHealth handles GET /api/auth/health.
func (h *Handlers) AuthHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "authentication",
	})
}

// MoodHealth handles GET /api/moods/health, reporting which classifier
// ports are wired.
func (h *Handlers) MoodHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"service":       "mood_analysis",
		"models_loaded": h.analyzer.ModelsLoaded(),
	})
}

// ----------------------------------------------------------------------------
// Mood handlers
// ----------------------------------------------------------------------------

// Analyze handles POST /api/moods/analyze: runs the mood analysis and
// returns the profile without persisting anything.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.analyzer.Analyze(r.Context(), req.Text)
	if errors.Is(err, mood.ErrTextTooShort) {
		respondError(w, http.StatusBadRequest, "Text must be at least 3 characters long")
		return
	}
	if err != nil {
		h.logger.Error("mood analysis failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to analyze mood")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// CreateEntry handles POST /api/moods/entries: analyzes the text and
// persists the entry for the authenticated user.
func (h *Handlers) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.analyzer.Analyze(r.Context(), req.Text)
	if errors.Is(err, mood.ErrTextTooShort) {
		respondError(w, http.StatusBadRequest, "Text must be at least 3 characters long")
		return
	}
	if err != nil {
		h.logger.Error("mood analysis failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to analyze mood")
		return
	}

	user := currentUser(r)
	entry := &db.MoodEntry{
		UserID:              user.ID,
		TextContent:         strings.TrimSpace(req.Text),
		Sentiment:           profile.Sentiment,
		SentimentConfidence: profile.SentimentConfidence,
		EnergyLevel:         profile.EnergyLevel,
		Emotions:            profile.Emotions,
		Keywords:            profile.Keywords,
		ColorPalette:        profile.ColorPalette,
		ArtStyle:            profile.ArtStyle,
		MusicMood:           profile.MusicMood,
		AIInsight:           profile.AIInsight,
	}
	if err := h.database.Entries().Create(r.Context(), entry); err != nil {
		h.logger.Error("saving mood entry failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to save mood entry")
		return
	}

	respondJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// ListEntries handles GET /api/moods/entries.
func (h *Handlers) ListEntries(w http.ResponseWriter, r *http.Request) {
	limit := defaultEntryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	user := currentUser(r)
	entries, err := h.database.Entries().ListRecent(r.Context(), user.ID, limit)
	if err != nil {
		h.logger.Error("listing mood entries failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to list mood entries")
		return
	}

	responses := make([]entryResponse, len(entries))
	for i := range entries {
		responses[i] = toEntryResponse(&entries[i])
	}
	respondJSON(w, http.StatusOK, responses)
}

// Playlist handles POST /api/moods/playlist: maps a mood analysis to music
// tags and fetches a matching playlist. Failures are reported inside the
// result body, not as HTTP errors.
func (h *Handlers) Playlist(w http.ResponseWriter, r *http.Request) {
	var req playlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.playlists.Fetch(r.Context(), &req.Analysis, req.Limit)
	respondJSON(w, http.StatusOK, result)
}

// WeeklySummary handles GET /api/moods/summary.
func (h *Handlers) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	since := time.Now().AddDate(0, 0, -summaryWindowDays)

	entries, err := h.database.Entries().ListSince(r.Context(), user.ID, since)
	if err != nil {
		h.logger.Error("loading entries for summary failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to generate summary")
		return
	}

	summaryEntries := make([]summary.Entry, len(entries))
	for i, e := range entries {
		summaryEntries[i] = summary.Entry{
			CreatedAt:   e.CreatedAt,
			Sentiment:   e.Sentiment,
			EnergyLevel: e.EnergyLevel,
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"summary": h.summaries.Weekly(r.Context(), summaryEntries),
	})
}

// Trends handles GET /api/moods/trends: clusters the user's recent entries
// into mood eras.
func (h *Handlers) Trends(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	since := time.Now().AddDate(0, 0, -trendsWindowDays)

	entries, err := h.database.Entries().ListSince(r.Context(), user.ID, since)
	if err != nil {
		h.logger.Error("loading entries for trends failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to detect mood trends")
		return
	}

	trendEntries := make([]trends.Entry, len(entries))
	for i, e := range entries {
		trendEntries[i] = trends.Entry{
			ID:          e.ID,
			CreatedAt:   e.CreatedAt,
			Sentiment:   e.Sentiment,
			Confidence:  e.SentimentConfidence,
			EnergyLevel: e.EnergyLevel,
			Emotions:    e.Emotions,
		}
	}

	eras, outliers := trends.DetectEras(trendEntries, trends.DefaultConfig())
	respondJSON(w, http.StatusOK, trendsResponse{
		Eras:         eras,
		OutlierCount: len(outliers),
		TotalEntries: len(entries),
	})
}

// ----------------------------------------------------------------------------
// Auth handlers
// ----------------------------------------------------------------------------

// Register handles POST /api/auth/register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil || h.database == nil {
		respondError(w, http.StatusServiceUnavailable, "Authentication is not configured")
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username, email and password are required")
		return
	}
	if !strings.HasSuffix(req.Email, "@gmail.com") {
		respondError(w, http.StatusBadRequest, "Only Gmail accounts are allowed")
		return
	}

	if _, err := h.database.Users().GetByEmail(r.Context(), req.Email); err == nil {
		respondError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if _, err := h.database.Users().GetByUsername(r.Context(), req.Username); err == nil {
		respondError(w, http.StatusBadRequest, "Username already taken")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("hashing password failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := &db.User{
		ID:             uuid.New(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashed,
		FullName:       req.FullName,
		IsActive:       true,
	}
	if err := h.database.Users().Create(r.Context(), user); err != nil {
		h.logger.Error("creating user failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	respondJSON(w, http.StatusOK, toUserResponse(user))
}

// Login handles POST /api/auth/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil || h.database == nil {
		respondError(w, http.StatusServiceUnavailable, "Authentication is not configured")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.database.Users().GetByEmail(r.Context(), req.Email)
	if err != nil || !auth.VerifyPassword(req.Password, user.HashedPassword) {
		w.Header().Set("WWW-Authenticate", "Bearer")
		respondError(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	token, err := h.auth.CreateToken(user.Username)
	if err != nil {
		h.logger.Error("creating token failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	respondJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(user),
	})
}

// Me handles GET /api/auth/me.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toUserResponse(currentUser(r)))
}

// Logout handles POST /api/auth/logout. Tokens are stateless; the client
// discards its copy.
func (h *Handlers) Logout(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// toEntryResponse shapes a stored entry for the API.
func toEntryResponse(e *db.MoodEntry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		TextContent: e.TextContent,
		Profile: mood.Profile{
			Sentiment:           e.Sentiment,
			SentimentConfidence: e.SentimentConfidence,
			EnergyLevel:         e.EnergyLevel,
			Emotions:            e.Emotions,
			Keywords:            e.Keywords,
			ColorPalette:        e.ColorPalette,
			ArtStyle:            e.ArtStyle,
			MusicMood:           e.MusicMood,
			AIInsight:           e.AIInsight,
		},
		CreatedAt: e.CreatedAt,
	}
}
