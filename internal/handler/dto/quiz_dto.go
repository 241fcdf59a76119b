package dto

import (
	"github.com/google/uuid"

	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuizResponse представляет состояние викторины для участника: правильный
// ответ на только что отвеченный вопрос и/или следующий вопрос.
// Поля-указатели опускаются в JSON, когда значения нет: при старте викторины
// нет "предыдущего" вопроса, у завершённой — следующего.
// CorrectAnswer вопроса попадает в ответ только как
// previous_question_correct_answer и только для только что отвеченного.
type QuizResponse struct {
	QuizID                        uuid.UUID `json:"quiz_id"`
	PreviousQuestionCorrectAnswer *string   `json:"previous_question_correct_answer,omitempty"`
	QuestionID                    *int      `json:"question_id,omitempty"`
	Question                      *string   `json:"question,omitempty"`
}

// NewStartQuizResponse создает DTO для только что стартовавшей викторины
func NewStartQuizResponse(first *entity.Question) *QuizResponse {
	return &QuizResponse{
		QuizID:     first.QuizID,
		QuestionID: &first.QuestionID,
		Question:   &first.Question,
	}
}

// NewAnswerResponse создает DTO после приёма ответа.
// next == nil означает, что викторина завершена — поля следующего вопроса
// в JSON не попадают.
func NewAnswerResponse(answered, next *entity.Question) *QuizResponse {
	resp := &QuizResponse{
		QuizID:                        answered.QuizID,
		PreviousQuestionCorrectAnswer: &answered.CorrectAnswer,
	}
	if next != nil {
		resp.QuestionID = &next.QuestionID
		resp.Question = &next.Question
	}
	return resp
}

// NewNextQuestionResponse создает DTO для текущего неотвеченного вопроса
func NewNextQuestionResponse(question *entity.Question) *QuizResponse {
	return &QuizResponse{
		QuizID:     question.QuizID,
		QuestionID: &question.QuestionID,
		Question:   &question.Question,
	}
}
