package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// GetByID возвращает вопрос по question_id
func (r *QuestionRepo) GetByID(questionID int) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, "question_id = ?", questionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetNextUnanswered возвращает самый ранний неотвеченный вопрос викторины.
// Порядок вставки задаётся парой (add_date, question_id), поэтому результат
// детерминирован и для вопросов, сохранённых одним батчем.
func (r *QuestionRepo) GetNextUnanswered(quizID uuid.UUID) (*entity.Question, error) {
	var question entity.Question
	err := r.db.
		Where("quiz_id = ? AND answer IS NULL", quizID).
		Order("add_date, question_id").
		First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// CreateAll сохраняет вопросы, пропуская дубликаты question_id.
// Идемпотентность обеспечивает первичный ключ: вставка либо проходит целиком,
// либо отвергается базой с кодом 23505. Предварительной проверки существования
// нет, поэтому конкурентные старты викторин безопасны.
func (r *QuestionRepo) CreateAll(questions []entity.Question) ([]entity.Question, error) {
	inserted := make([]entity.Question, 0, len(questions))
	for i := range questions {
		if err := r.db.Create(&questions[i]).Error; err != nil {
			if isUniqueViolation(err) {
				// Дубликат question_id — молча пропускаем
				continue
			}
			return nil, fmt.Errorf("insert question #%d failed: %w", questions[i].QuestionID, err)
		}
		inserted = append(inserted, questions[i])
	}
	return inserted, nil
}

// RecordAnswer записывает ответ участника одной условной командой UPDATE.
// Ответ сохраняется, только если вопрос принадлежит викторине и поле answer
// ещё пусто. Из двух конкурентных попыток ответить на один вопрос ровно одна
// получит RowsAffected == 1.
func (r *QuestionRepo) RecordAnswer(questionID int, quizID uuid.UUID, answer string) (*entity.Question, error) {
	result := r.db.Model(&entity.Question{}).
		Where("question_id = ? AND quiz_id = ? AND answer IS NULL", questionID, quizID).
		Update("answer", answer)
	if result.Error != nil {
		return nil, fmt.Errorf("record answer for question #%d failed: %w", questionID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, r.classifyAnswerRejection(questionID, quizID)
	}

	var question entity.Question
	if err := r.db.First(&question, "question_id = ?", questionID).Error; err != nil {
		return nil, fmt.Errorf("reload question #%d after answer failed: %w", questionID, err)
	}
	return &question, nil
}

// classifyAnswerRejection различает причину отказа условной записи:
// вопрос не существует, чужая викторина или ответ уже был дан.
func (r *QuestionRepo) classifyAnswerRejection(questionID int, quizID uuid.UUID) error {
	question, err := r.GetByID(questionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return repository.ErrQuestionNotFound
		}
		return err
	}
	if !question.BelongsTo(quizID) {
		return repository.ErrQuizMismatch
	}
	return repository.ErrAlreadyAnswered
}

// isUniqueViolation проверяет Postgres unique violation (23505) для pgconn и lib/pq драйверов
func isUniqueViolation(err error) bool {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
