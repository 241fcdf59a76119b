package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestQuestion_IsAnswered(t *testing.T) {
	// Arrange
	answer := "Париж"
	answered := &Question{
		QuestionID:    100,
		QuizID:        uuid.New(),
		Question:      "Столица Франции?",
		CorrectAnswer: "Париж",
		Answer:        &answer,
		AddDate:       time.Now(),
	}
	unanswered := &Question{
		QuestionID:    101,
		CorrectAnswer: "Лондон",
	}

	// Act & Assert
	assert.True(t, answered.IsAnswered(), "Вопрос с записанным ответом должен считаться отвеченным")
	assert.False(t, unanswered.IsAnswered(), "Вопрос без ответа не должен считаться отвеченным")
}

func TestQuestion_IsAnswered_EmptyAnswer(t *testing.T) {
	// Пустая строка — тоже ответ: NULL и "" различаются
	empty := ""
	question := &Question{QuestionID: 1, Answer: &empty}

	assert.True(t, question.IsAnswered(), "Пустая строка — записанный ответ, а не его отсутствие")
}

func TestQuestion_BelongsTo(t *testing.T) {
	// Arrange
	quizID := uuid.New()
	question := &Question{
		QuestionID: 1,
		QuizID:     quizID,
	}

	// Act & Assert
	assert.True(t, question.BelongsTo(quizID), "Вопрос должен принадлежать своей викторине")
	assert.False(t, question.BelongsTo(uuid.New()), "Вопрос не должен принадлежать чужой викторине")
}
