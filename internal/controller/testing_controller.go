package controller

import (
	"quiz_engine_backend/internal/model"
	"quiz_engine_backend/internal/service"
	"quiz_engine_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestingController struct {
	Tests    *TestsGuard
	Sessions *service.SessionService
}

func NewTestingController(tests *TestsGuard, sessions *service.SessionService) *TestingController {
	return &TestingController{Tests: tests, Sessions: sessions}
}

type TestSummary struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	QuestionCount   int    `json:"questionCount"`
	TimePerQuestion int    `json:"timePerQuestion"`
}

type StudentAnswer struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// StudentQuestion is a question as shown during an attempt, without the
// correctness flags.
type StudentQuestion struct {
	ID        string          `json:"id"`
	Text      string          `json:"text"`
	Answers   []StudentAnswer `json:"answers"`
	Index     int             `json:"index"`
	Total     int             `json:"total"`
	TimeLimit int             `json:"timeLimit"`
}

type StartSessionReq struct {
	TestID      string `json:"testId" binding:"required"`
	StudentName string `json:"studentName"`
}

type SubmitAnswerReq struct {
	QuestionID string `json:"questionId" binding:"required"`
	AnswerID   string `json:"answerId" binding:"required"`
}

func toStudentQuestion(q *model.Question, ts *service.TestingService) *StudentQuestion {
	if q == nil {
		return nil
	}
	test := ts.Test()
	sq := &StudentQuestion{
		ID:        q.ID,
		Text:      q.Text,
		Answers:   make([]StudentAnswer, 0, len(q.Answers)),
		Index:     ts.State().Cursor + 1,
		Total:     len(test.Questions),
		TimeLimit: test.TimePerQuestion,
	}
	for _, a := range q.Answers {
		sq.Answers = append(sq.Answers, StudentAnswer{ID: a.ID, Text: a.Text})
	}
	return sq
}

// @Summary 可参加的测试列表
// @Tags 答题
// @Produce json
// @Success 200 {object} util.Response
// @Router /tests [get]
func (c *TestingController) ListTests(ctx *gin.Context) {
	var list []TestSummary
	c.Tests.Read(func(svc *service.TestManagementService) {
		tests := svc.GetAllTests()
		list = make([]TestSummary, 0, len(tests))
		for _, t := range tests {
			list = append(list, TestSummary{
				ID:              t.ID,
				Title:           t.Title,
				QuestionCount:   len(t.Questions),
				TimePerQuestion: t.TimePerQuestion,
			})
		}
	})
	util.Success(ctx, list)
}

// @Summary 开始答题
// @Description 题目与选项顺序随机，返回会话ID与第一道题
// @Tags 答题
// @Accept json
// @Produce json
// @Param body body StartSessionReq true "测试ID与学生姓名"
// @Success 201 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /sessions [post]
func (c *TestingController) StartSession(ctx *gin.Context) {
	var req StartSessionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var ts *service.TestingService
	err := c.Tests.Do(func(svc *service.TestManagementService) error {
		test, err := svc.FindTestByID(req.TestID)
		if err != nil {
			return err
		}
		ts, err = c.Sessions.Start(ctx.Request.Context(), test, req.StudentName)
		return err
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	q, ts, err := c.Sessions.Next(ctx.Request.Context(), ts.ID())
	if err != nil {
		handleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"sessionId":   ts.ID(),
		"studentName": ts.StudentName(),
		"testTitle":   ts.Test().Title,
		"question":    toStudentQuestion(q, ts),
	})
}

// @Summary 获取下一道题
// @Description 推进会话到下一题；全部题目发放完毕时 finished 为 true
// @Tags 答题
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /sessions/{id}/next [post]
func (c *TestingController) NextQuestion(ctx *gin.Context) {
	q, ts, err := c.Sessions.Next(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"finished": ts.Finished(),
		"question": toStudentQuestion(q, ts),
	})
}

// @Summary 查看当前题目
// @Description 只读，不推进会话
// @Tags 答题
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /sessions/{id} [get]
func (c *TestingController) CurrentQuestion(ctx *gin.Context) {
	ts, err := c.Sessions.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"sessionId":   ts.ID(),
		"studentName": ts.StudentName(),
		"testTitle":   ts.Test().Title,
		"finished":    ts.Finished(),
		"answered":    len(ts.State().Answers),
		"question":    toStudentQuestion(ts.CurrentQuestion(), ts),
	})
}

// @Summary 提交答案
// @Tags 答题
// @Accept json
// @Produce json
// @Param id path string true "会话ID"
// @Param body body SubmitAnswerReq true "题目与选项"
// @Success 200 {object} util.Response
// @Router /sessions/{id}/answers [post]
func (c *TestingController) SubmitAnswer(ctx *gin.Context) {
	var req SubmitAnswerReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Sessions.Submit(ctx.Request.Context(), ctx.Param("id"), req.QuestionID, req.AnswerID); err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"questionId": req.QuestionID, "answerId": req.AnswerID})
}

// @Summary 结束答题并计分
// @Description 未作答的题目按错误计
// @Tags 答题
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /sessions/{id}/stop [post]
func (c *TestingController) StopSession(ctx *gin.Context) {
	results, recorded, err := c.Sessions.Stop(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"results": results,
		"record":  recorded,
	})
}
