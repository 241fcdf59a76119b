package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuestionProvider определяет источник вопросов для новой викторины
type QuestionProvider interface {
	// Fetch выполняет один запрос к источнику и возвращает не более count
	// кандидатов, помеченных переданным quizID.
	Fetch(ctx context.Context, count int, quizID uuid.UUID) ([]entity.Question, error)
}

// TriviaSource реализует QuestionProvider поверх внешнего HTTP API вопросов.
// Провайдер отдаёт массив объектов {id, question, answer}; id назначается
// провайдером и глобально уникален.
type TriviaSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewTriviaSource создает клиент внешнего API вопросов
func NewTriviaSource(baseURL string, timeout time.Duration) *TriviaSource {
	return &TriviaSource{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// providerQuestion — элемент ответа провайдера. Поля-указатели позволяют
// отличить отсутствующее поле от пустого значения.
type providerQuestion struct {
	ID       *int    `json:"id"`
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// Fetch запрашивает у провайдера до count вопросов одним обращением.
// Элемент без обязательных полей делает невалидным весь ответ —
// см. ErrMalformedProviderResponse.
func (s *TriviaSource) Fetch(ctx context.Context, count int, quizID uuid.UUID) ([]entity.Question, error) {
	reqURL := fmt.Sprintf("%s?count=%d", s.baseURL, count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create trivia provider request failed: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trivia provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrMalformedProviderResponse, resp.StatusCode, string(body))
	}

	var items []providerQuestion
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProviderResponse, err)
	}

	now := time.Now()
	questions := make([]entity.Question, 0, len(items))
	for i, item := range items {
		if item.ID == nil || *item.ID <= 0 || item.Question == nil || *item.Question == "" || item.Answer == nil {
			return nil, fmt.Errorf("%w: item #%d is missing required fields", ErrMalformedProviderResponse, i)
		}
		questions = append(questions, entity.Question{
			QuestionID:    *item.ID,
			Question:      *item.Question,
			CorrectAnswer: *item.Answer,
			QuizID:        quizID,
			AddDate:       now,
		})
	}

	// Провайдер может прислать больше запрошенного — лишнее отбрасываем
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}
