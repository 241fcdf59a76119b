package entity

import (
	"time"

	"github.com/google/uuid"
)

// Question представляет вопрос викторины.
// Отдельной сущности Quiz нет: викторина — это множество вопросов,
// объединённых одним QuizID. Прогресс викторины полностью выводится
// из её вопросов.
type Question struct {
	// QuestionID назначается внешним провайдером и уникален глобально,
	// а не в рамках одной викторины. Автоинкремент отключен.
	QuestionID    int       `gorm:"column:question_id;primaryKey;autoIncrement:false" json:"question_id"`
	QuizID        uuid.UUID `gorm:"column:quiz_id;type:uuid;not null;index" json:"quiz_id"`
	Question      string    `gorm:"column:question;size:255;not null" json:"question"`
	CorrectAnswer string    `gorm:"column:correct_answer;size:255;not null" json:"-"` // Скрыто от клиента
	// Answer — ответ участника. NULL означает "ответа ещё не было".
	// Записывается ровно один раз и после этого не меняется.
	Answer  *string   `gorm:"column:answer;size:255" json:"answer,omitempty"`
	AddDate time.Time `gorm:"column:add_date;not null" json:"add_date"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsAnswered сообщает, был ли уже дан ответ на вопрос
func (q *Question) IsAnswered() bool {
	return q.Answer != nil
}

// BelongsTo проверяет принадлежность вопроса викторине
func (q *Question) BelongsTo(quizID uuid.UUID) bool {
	return q.QuizID == quizID
}
