package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yourusername/quiz-api/internal/domain/repository"
	"github.com/yourusername/quiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/internal/service"
)

// QuizHandler обрабатывает запросы викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// StartQuizRequest представляет запрос на старт викторины
type StartQuizRequest struct {
	QuestionsNum int `json:"questions_num" binding:"required,min=1,max=100"`
}

// SubmitAnswerRequest представляет ответ участника на вопрос
type SubmitAnswerRequest struct {
	QuizID     uuid.UUID `json:"quiz_id" binding:"required"`
	QuestionID int       `json:"question_id" binding:"required,gt=0"`
	Answer     string    `json:"answer" binding:"required,max=255"`
}

// StartQuiz начинает новую викторину: загружает questions_num вопросов у
// внешнего провайдера и возвращает первый из них
func (h *QuizHandler) StartQuiz(c *gin.Context) {
	var req StartQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	first, err := h.quizService.StartQuiz(c.Request.Context(), req.QuestionsNum)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStartQuizResponse(first))
}

// SubmitAnswer принимает ответ на вопрос и возвращает правильный ответ вместе
// со следующим вопросом, если викторина ещё не завершена
func (h *QuizHandler) SubmitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	answered, next, err := h.quizService.SubmitAnswer(req.QuizID, req.QuestionID, req.Answer)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAnswerResponse(answered, next))
}

// NextQuestion возвращает текущий неотвеченный вопрос викторины
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID) // Получаем из контекста

	question, err := h.quizService.NextQuestion(quizID)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewNextQuestionResponse(question))
}

// handleQuizError преобразует ошибки сервиса в HTTP-статусы.
// Три причины отказа записи ответа (нет такого вопроса, чужая викторина,
// ответ уже был) для клиента намеренно неразличимы.
func (h *QuizHandler) handleQuizError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrQuestionNotFound) ||
		errors.Is(err, repository.ErrQuizMismatch) ||
		errors.Is(err, repository.ErrAlreadyAnswered) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid question or quiz id, or the question is already answered"})
	} else if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in QuizHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
