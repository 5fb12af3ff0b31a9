package store

import (
	"strings"
	"time"

	"github.com/workfree/pocket-lawyer/internal/models"
)

// Store is the single source of truth for all entities. Handlers hold no
// state of their own and go through these methods only.
//
// Absence is signaled with a false second return, never an error; the HTTP
// layer decides whether that is a 404.
type Store struct {
	users         *Collection[models.User]
	chatMessages  *Collection[models.ChatMessage]
	articles      *Collection[models.KnowledgeArticle]
	analyses      *Collection[models.DocumentAnalysis]
	templates     *Collection[models.LegalTemplate]
	cases         *Collection[models.CaseLaw]
	stateGuides   *Collection[models.StateLawGuide]
	bookings      *Collection[models.ConsultationBooking]
	feedback      *Collection[models.Feedback]
}

// New returns a store seeded with the embedded knowledge base, case law,
// templates, and state guides.
func New() (*Store, error) {
	s := &Store{
		users:        NewCollection[models.User](),
		chatMessages: NewCollection[models.ChatMessage](),
		articles:     NewCollection[models.KnowledgeArticle](),
		analyses:     NewCollection[models.DocumentAnalysis](),
		templates:    NewCollection[models.LegalTemplate](),
		cases:        NewCollection[models.CaseLaw](),
		stateGuides:  NewCollection[models.StateLawGuide](),
		bookings:     NewCollection[models.ConsultationBooking](),
		feedback:     NewCollection[models.Feedback](),
	}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewEmpty returns a store with no seed content. Used by tests.
func NewEmpty() *Store {
	return &Store{
		users:        NewCollection[models.User](),
		chatMessages: NewCollection[models.ChatMessage](),
		articles:     NewCollection[models.KnowledgeArticle](),
		analyses:     NewCollection[models.DocumentAnalysis](),
		templates:    NewCollection[models.LegalTemplate](),
		cases:        NewCollection[models.CaseLaw](),
		stateGuides:  NewCollection[models.StateLawGuide](),
		bookings:     NewCollection[models.ConsultationBooking](),
		feedback:     NewCollection[models.Feedback](),
	}
}

// --- Users ---

func (s *Store) GetUser(id int) (models.User, bool) {
	return s.users.Get(id)
}

func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	return s.users.Find(func(u models.User) bool {
		return u.Username == username
	})
}

// CreateUser stores a new user. Password is expected to be hashed already.
// Returns false without storing when the username is already taken; the
// uniqueness check and the insert share one critical section.
func (s *Store) CreateUser(in models.InsertUser) (models.User, bool) {
	return s.users.InsertUnique(
		func(u models.User) bool { return u.Username == in.Username },
		func(id int) models.User {
			return models.User{
				ID:       id,
				Username: in.Username,
				Password: in.Password,
			}
		},
	)
}

// --- Chat messages ---

// GetChatMessages lists messages in insertion order, optionally filtered to
// one user id.
func (s *Store) GetChatMessages(userID *int) []models.ChatMessage {
	if userID == nil {
		return s.chatMessages.List()
	}
	return s.chatMessages.Filter(func(m models.ChatMessage) bool {
		return m.UserID != nil && *m.UserID == *userID
	})
}

func (s *Store) CreateChatMessage(in models.InsertChatMessage) models.ChatMessage {
	return s.chatMessages.Insert(func(id int) models.ChatMessage {
		return models.ChatMessage{
			ID:        id,
			UserID:    in.UserID,
			Content:   in.Content,
			Type:      in.Type,
			Timestamp: time.Now().UTC(),
		}
	})
}

// --- Knowledge articles ---

// GetKnowledgeArticles lists published articles only.
func (s *Store) GetKnowledgeArticles() []models.KnowledgeArticle {
	return s.articles.Filter(func(a models.KnowledgeArticle) bool {
		return a.IsPublished
	})
}

func (s *Store) GetKnowledgeArticle(id int) (models.KnowledgeArticle, bool) {
	return s.articles.Get(id)
}

func (s *Store) CreateKnowledgeArticle(in models.InsertKnowledgeArticle) models.KnowledgeArticle {
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	return s.articles.Insert(func(id int) models.KnowledgeArticle {
		return models.KnowledgeArticle{
			ID:          id,
			Title:       in.Title,
			Content:     in.Content,
			Category:    in.Category,
			Tags:        in.Tags,
			IsPublished: published,
		}
	})
}

func (s *Store) UpdateKnowledgeArticle(id int, in models.UpdateKnowledgeArticle) (models.KnowledgeArticle, bool) {
	return s.articles.Update(id, func(a models.KnowledgeArticle) models.KnowledgeArticle {
		if in.Title != nil {
			a.Title = *in.Title
		}
		if in.Content != nil {
			a.Content = *in.Content
		}
		if in.Category != nil {
			a.Category = *in.Category
		}
		if in.Tags != nil {
			a.Tags = *in.Tags
		}
		if in.IsPublished != nil {
			a.IsPublished = *in.IsPublished
		}
		return a
	})
}

func (s *Store) DeleteKnowledgeArticle(id int) bool {
	return s.articles.Delete(id)
}

// --- Document analyses ---

func (s *Store) GetDocumentAnalyses() []models.DocumentAnalysis {
	return s.analyses.List()
}

func (s *Store) CreateDocumentAnalysis(fileName, fileType, result string) models.DocumentAnalysis {
	return s.analyses.Insert(func(id int) models.DocumentAnalysis {
		return models.DocumentAnalysis{
			ID:             id,
			FileName:       fileName,
			FileType:       fileType,
			AnalysisResult: result,
			Timestamp:      time.Now().UTC(),
		}
	})
}

// --- Legal templates ---

// GetLegalTemplates lists templates, optionally filtered by category
// (case-insensitive exact match).
func (s *Store) GetLegalTemplates(category string) []models.LegalTemplate {
	if category == "" {
		return s.templates.List()
	}
	return s.templates.Filter(func(t models.LegalTemplate) bool {
		return strings.EqualFold(t.Category, category)
	})
}

func (s *Store) GetLegalTemplate(id int) (models.LegalTemplate, bool) {
	return s.templates.Get(id)
}

// --- Case law ---

// GetCaseLaw lists case-law entries filtered by category (case-insensitive
// exact match) and/or a free-text search over title, summary, and key
// points (case-insensitive substring).
func (s *Store) GetCaseLaw(category, search string) []models.CaseLaw {
	needle := strings.ToLower(search)
	return s.cases.Filter(func(c models.CaseLaw) bool {
		if category != "" && !strings.EqualFold(c.Category, category) {
			return false
		}
		if needle == "" {
			return true
		}
		return caseMatches(c, needle)
	})
}

func caseMatches(c models.CaseLaw, needle string) bool {
	if strings.Contains(strings.ToLower(c.CaseTitle), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Summary), needle) {
		return true
	}
	for _, p := range c.KeyPoints {
		if strings.Contains(strings.ToLower(p), needle) {
			return true
		}
	}
	return false
}

// --- State law guides ---

// GetStateLawGuides lists guides, optionally filtered by state and/or
// category (case-insensitive exact match on each).
func (s *Store) GetStateLawGuides(state, category string) []models.StateLawGuide {
	return s.stateGuides.Filter(func(g models.StateLawGuide) bool {
		if state != "" && !strings.EqualFold(g.State, state) {
			return false
		}
		if category != "" && !strings.EqualFold(g.Category, category) {
			return false
		}
		return true
	})
}

// --- Consultation bookings ---

func (s *Store) GetConsultationBookings() []models.ConsultationBooking {
	return s.bookings.List()
}

func (s *Store) GetConsultationBooking(id int) (models.ConsultationBooking, bool) {
	return s.bookings.Get(id)
}

// CreateConsultationBooking stores a booking. Status always starts at
// "pending" regardless of client input.
func (s *Store) CreateConsultationBooking(in models.InsertConsultationBooking) models.ConsultationBooking {
	return s.bookings.Insert(func(id int) models.ConsultationBooking {
		return models.ConsultationBooking{
			ID:            id,
			Name:          in.Name,
			Email:         in.Email,
			Phone:         in.Phone,
			LegalIssue:    in.LegalIssue,
			PreferredDate: in.PreferredDate,
			Message:       in.Message,
			Status:        models.BookingStatusPending,
		}
	})
}

func (s *Store) UpdateConsultationBooking(id int, in models.UpdateConsultationBooking) (models.ConsultationBooking, bool) {
	return s.bookings.Update(id, func(b models.ConsultationBooking) models.ConsultationBooking {
		if in.Name != nil {
			b.Name = *in.Name
		}
		if in.Email != nil {
			b.Email = *in.Email
		}
		if in.Phone != nil {
			b.Phone = in.Phone
		}
		if in.LegalIssue != nil {
			b.LegalIssue = *in.LegalIssue
		}
		if in.PreferredDate != nil {
			b.PreferredDate = in.PreferredDate
		}
		if in.Message != nil {
			b.Message = in.Message
		}
		if in.Status != nil {
			b.Status = *in.Status
		}
		return b
	})
}

// --- Feedback ---

func (s *Store) GetFeedbackEntries() []models.Feedback {
	return s.feedback.List()
}

func (s *Store) CreateFeedback(in models.InsertFeedback, userAgent *string) models.Feedback {
	return s.feedback.Insert(func(id int) models.Feedback {
		return models.Feedback{
			ID:        id,
			Type:      in.Type,
			Content:   in.Content,
			UserAgent: userAgent,
			Timestamp: time.Now().UTC(),
		}
	})
}

// Counts reports the number of records per collection, keyed by entity name.
// Used by the health check.
func (s *Store) Counts() map[string]int {
	return map[string]int{
		"users":                s.users.Len(),
		"chatMessages":         s.chatMessages.Len(),
		"knowledgeArticles":    s.articles.Len(),
		"documentAnalyses":     s.analyses.Len(),
		"legalTemplates":       s.templates.Len(),
		"caseLaw":              s.cases.Len(),
		"stateLawGuides":       s.stateGuides.Len(),
		"consultationBookings": s.bookings.Len(),
		"feedback":             s.feedback.Len(),
	}
}
