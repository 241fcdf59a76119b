package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T, handler http.HandlerFunc) *TriviaSource {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewTriviaSource(server.URL, 2*time.Second)
}

func TestTriviaSource_Fetch_Success(t *testing.T) {
	// Arrange
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("count"), "Запрошенное количество должно передаваться провайдеру")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 10, "question": "Столица Франции?", "answer": "Париж"},
			{"id": 11, "question": "Столица Италии?", "answer": "Рим"},
			{"id": 12, "question": "Столица Испании?", "answer": "Мадрид"}
		]`))
	})
	quizID := uuid.New()

	// Act
	questions, err := source.Fetch(context.Background(), 3, quizID)

	// Assert
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, 10, questions[0].QuestionID)
	assert.Equal(t, "Столица Франции?", questions[0].Question)
	assert.Equal(t, "Париж", questions[0].CorrectAnswer)
	for _, q := range questions {
		assert.Equal(t, quizID, q.QuizID, "Каждый кандидат должен быть помечен quiz_id новой викторины")
		assert.False(t, q.AddDate.IsZero())
		assert.Nil(t, q.Answer, "Свежий вопрос не может быть отвеченным")
	}
}

func TestTriviaSource_Fetch_TruncatesOversizedResponse(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "question": "В1", "answer": "О1"},
			{"id": 2, "question": "В2", "answer": "О2"},
			{"id": 3, "question": "В3", "answer": "О3"}
		]`))
	})

	questions, err := source.Fetch(context.Background(), 2, uuid.New())

	require.NoError(t, err)
	assert.Len(t, questions, 2, "Лишние вопросы сверх запрошенного количества отбрасываются")
}

func TestTriviaSource_Fetch_MissingFieldFailsWholeFetch(t *testing.T) {
	// Элемент без answer: молча отбрасывать его нельзя — количество
	// полученных вопросов влияет на корректность, падает весь запрос
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "question": "В1", "answer": "О1"},
			{"id": 2, "question": "В2"}
		]`))
	})

	questions, err := source.Fetch(context.Background(), 2, uuid.New())

	assert.Nil(t, questions)
	assert.ErrorIs(t, err, ErrMalformedProviderResponse)
}

func TestTriviaSource_Fetch_NonPositiveID(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 0, "question": "В1", "answer": "О1"}]`))
	})

	_, err := source.Fetch(context.Background(), 1, uuid.New())

	assert.ErrorIs(t, err, ErrMalformedProviderResponse)
}

func TestTriviaSource_Fetch_BadStatus(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	_, err := source.Fetch(context.Background(), 1, uuid.New())

	assert.ErrorIs(t, err, ErrMalformedProviderResponse)
}

func TestTriviaSource_Fetch_InvalidJSON(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not a json`))
	})

	_, err := source.Fetch(context.Background(), 1, uuid.New())

	assert.ErrorIs(t, err, ErrMalformedProviderResponse)
}

func TestTriviaSource_Fetch_ContextCancelled(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := source.Fetch(ctx, 1, uuid.New())

	require.Error(t, err, "Отменённый контекст должен прерывать запрос к провайдеру")
}
