package repository

import "errors"

// Причины отказа условной записи ответа. Снаружи все три схлопываются в один
// клиентский ответ (это осознанное решение интерфейса), но внутри различаются —
// для логов и тестов.
var (
	// ErrQuestionNotFound означает, что вопроса с таким question_id нет вовсе.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrQuizMismatch означает, что вопрос существует, но принадлежит другой викторине.
	ErrQuizMismatch = errors.New("question belongs to another quiz")
	// ErrAlreadyAnswered означает, что ответ на вопрос уже был записан ранее.
	ErrAlreadyAnswered = errors.New("question is already answered")
)
