package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// DefaultMaxFetchAttempts — потолок обращений к провайдеру за один старт
// викторины. В исходном поведении цикл загрузки не ограничен; явный лимит
// задаётся конфигурацией trivia.max_fetch_attempts, при исчерпании
// возвращается ErrSourceExhausted.
const DefaultMaxFetchAttempts = 10

// QuizService реализует машину состояний викторины: старт, приём ответа,
// выдача следующего вопроса. Состояний в памяти процесса нет — прогресс
// викторины целиком выводится из таблицы вопросов, поэтому сервис безопасен
// при любом количестве конкурентных запросов.
type QuizService struct {
	questionRepo     repository.QuestionRepository
	source           QuestionProvider
	maxFetchAttempts int
}

// NewQuizService создает новый сервис викторин
func NewQuizService(questionRepo repository.QuestionRepository, source QuestionProvider, maxFetchAttempts int) *QuizService {
	if maxFetchAttempts <= 0 {
		maxFetchAttempts = DefaultMaxFetchAttempts
	}
	return &QuizService{
		questionRepo:     questionRepo,
		source:           source,
		maxFetchAttempts: maxFetchAttempts,
	}
}

// StartQuiz создает новую викторину: генерирует quiz_id, добирает у провайдера
// questionsNum вопросов и возвращает первый из сохранённых.
//
// Провайдер может вернуть меньше запрошенного или вопросы с уже занятыми
// question_id (такие молча пропускает CreateAll), поэтому одного обращения
// может не хватить — цикл повторяет запрос на недостающее количество.
// Частично сохранённые вопросы неудавшегося старта не откатываются.
func (s *QuizService) StartQuiz(ctx context.Context, questionsNum int) (*entity.Question, error) {
	if questionsNum <= 0 {
		return nil, fmt.Errorf("%w: questions_num must be positive", apperrors.ErrValidation)
	}

	quizID := uuid.New()
	persisted := make([]entity.Question, 0, questionsNum)

	for attempt := 1; len(persisted) < questionsNum; attempt++ {
		if attempt > s.maxFetchAttempts {
			log.Printf("[QuizService] Викторина %s: после %d обращений к провайдеру набрано %d вопросов из %d",
				quizID, s.maxFetchAttempts, len(persisted), questionsNum)
			return nil, fmt.Errorf("%w: got %d of %d questions after %d attempts",
				ErrSourceExhausted, len(persisted), questionsNum, s.maxFetchAttempts)
		}

		candidates, err := s.source.Fetch(ctx, questionsNum-len(persisted), quizID)
		if err != nil {
			return nil, fmt.Errorf("fetch questions for quiz %s failed: %w", quizID, err)
		}

		saved, err := s.questionRepo.CreateAll(candidates)
		if err != nil {
			return nil, fmt.Errorf("persist questions for quiz %s failed: %w", quizID, err)
		}
		persisted = append(persisted, saved...)
	}

	log.Printf("[QuizService] Викторина %s создана: %d вопросов", quizID, len(persisted))

	first := persisted[0]
	return &first, nil
}

// SubmitAnswer записывает ответ участника и возвращает отвеченный вопрос
// вместе со следующим неотвеченным. next == nil означает, что викторина
// завершена. Эксклюзивность записи обеспечивает условный UPDATE в репозитории:
// из конкурентных попыток ответить на один вопрос ровно одна успешна.
func (s *QuizService) SubmitAnswer(quizID uuid.UUID, questionID int, answer string) (answered, next *entity.Question, err error) {
	answered, err = s.questionRepo.RecordAnswer(questionID, quizID, answer)
	if err != nil {
		return nil, nil, err
	}

	next, err = s.questionRepo.GetNextUnanswered(quizID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Все вопросы викторины отвечены
			return answered, nil, nil
		}
		return nil, nil, fmt.Errorf("get next question for quiz %s failed: %w", quizID, err)
	}
	return answered, next, nil
}

// NextQuestion возвращает текущий неотвеченный вопрос викторины.
// apperrors.ErrNotFound приходит и для завершённой, и для несуществующей
// викторины — наружу они неразличимы.
func (s *QuizService) NextQuestion(quizID uuid.UUID) (*entity.Question, error) {
	return s.questionRepo.GetNextUnanswered(quizID)
}
