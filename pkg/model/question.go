package model

import "time"

// Question belongs to exactly one role and is cascade-deleted with it.
type Question struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	RoleID       int64     `json:"role_id"`
	QuestionText string    `json:"question_text"`
	QuestionType string    `json:"question_type"`
	Difficulty   string    `json:"difficulty"`
}

type CreateQuestionReq struct {
	RoleID       int64  `json:"role_id" binding:"required"`
	QuestionText string `json:"question_text" binding:"required"`
	QuestionType string `json:"question_type" binding:"required"`
	Difficulty   string `json:"difficulty" binding:"required"`
}

type UpdateQuestionReq struct {
	QuestionText string `json:"question_text" binding:"required"`
	QuestionType string `json:"question_type" binding:"required"`
	Difficulty   string `json:"difficulty" binding:"required"`
}
