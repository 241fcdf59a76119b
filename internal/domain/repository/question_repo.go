package repository

import (
	"github.com/google/uuid"

	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами.
// Вся корректность при конкурентном доступе обеспечивается на этом уровне:
// идемпотентной вставкой (CreateAll) и условной записью ответа (RecordAnswer).
// Блокировки на уровне приложения не используются.
type QuestionRepository interface {
	// GetByID возвращает вопрос по первичному ключу question_id.
	// Возвращает apperrors.ErrNotFound, если записи нет.
	GetByID(questionID int) (*entity.Question, error)

	// GetNextUnanswered возвращает самый ранний по порядку вставки вопрос
	// викторины, на который ещё не был дан ответ.
	// Возвращает apperrors.ErrNotFound, если такого вопроса нет — викторина
	// либо завершена, либо никогда не существовала (снаружи неразличимо).
	GetNextUnanswered(quizID uuid.UUID) (*entity.Question, error)

	// CreateAll сохраняет переданные вопросы, молча пропуская те, чей
	// question_id уже существует. Возвращает только фактически вставленные
	// этим вызовом записи. Благодаря этому повторные батчи от ретраев
	// загрузки безопасны.
	CreateAll(questions []entity.Question) ([]entity.Question, error)

	// RecordAnswer атомарно записывает ответ участника, только если вопрос
	// принадлежит указанной викторине и ответа ещё не было (compare-and-set).
	// При неудаче возвращает одну из ошибок-причин: ErrQuestionNotFound,
	// ErrQuizMismatch, ErrAlreadyAnswered.
	RecordAnswer(questionID int, quizID uuid.UUID, answer string) (*entity.Question, error)
}
