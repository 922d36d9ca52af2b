package controller

import (
	"quiz_engine_backend/internal/model"
	"quiz_engine_backend/internal/service"
	"quiz_engine_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// TestController serves test authoring. Edits live in memory until /save.
type TestController struct {
	Tests *TestsGuard
}

func NewTestController(tests *TestsGuard) *TestController {
	return &TestController{Tests: tests}
}

type TestReq struct {
	Title           string `json:"title" binding:"required"`
	TimePerQuestion int    `json:"timePerQuestion" binding:"omitempty,min=1"`
}

type QuestionReq struct {
	Text string `json:"text" binding:"required"`
}

type AnswerReq struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

func cloneTests(tests []*model.Test) []*model.Test {
	out := make([]*model.Test, len(tests))
	for i, t := range tests {
		out[i] = t.Clone()
	}
	return out
}

func cloneQuestions(qs []*model.Question) []*model.Question {
	out := make([]*model.Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}

func cloneAnswers(as []*model.Answer) []*model.Answer {
	out := make([]*model.Answer, len(as))
	for i, a := range as {
		out[i] = a.Clone()
	}
	return out
}

// requireText trims s and rejects it when empty.
func requireText(ctx *gin.Context, field, s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		util.BadRequest(ctx, field+" must not be empty")
		return "", false
	}
	return s, true
}

// @Summary 获取全部测试（含未保存的修改）
// @Tags 测试管理
// @Produce json
// @Success 200 {object} util.Response
// @Router /admin/tests [get]
func (c *TestController) ListTests(ctx *gin.Context) {
	var tests []*model.Test
	c.Tests.Read(func(svc *service.TestManagementService) {
		tests = cloneTests(svc.GetAllTests())
	})
	util.Success(ctx, tests)
}

// @Summary 创建测试
// @Tags 测试管理
// @Accept json
// @Produce json
// @Param body body TestReq true "测试信息"
// @Success 201 {object} util.Response
// @Router /admin/tests [post]
func (c *TestController) CreateTest(ctx *gin.Context) {
	var req TestReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	title, ok := requireText(ctx, "title", req.Title)
	if !ok {
		return
	}

	var test *model.Test
	c.Tests.Read(func(svc *service.TestManagementService) {
		test = svc.CreateTest(title, req.TimePerQuestion).Clone()
	})
	util.Created(ctx, test)
}

// @Summary 获取测试详情
// @Tags 测试管理
// @Produce json
// @Param id path string true "测试ID"
// @Success 200 {object} util.Response
// @Router /admin/tests/{id} [get]
func (c *TestController) GetTest(ctx *gin.Context) {
	var test *model.Test
	err := c.Tests.Do(func(svc *service.TestManagementService) error {
		t, err := svc.FindTestByID(ctx.Param("id"))
		if err != nil {
			return err
		}
		test = t.Clone()
		return nil
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, test)
}

// @Summary 修改测试设置
// @Tags 测试管理
// @Accept json
// @Produce json
// @Param id path string true "测试ID"
// @Param body body TestReq true "测试信息"
// @Success 200 {object} util.Response
// @Router /admin/tests/{id} [put]
func (c *TestController) UpdateTest(ctx *gin.Context) {
	var req TestReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	title, ok := requireText(ctx, "title", req.Title)
	if !ok {
		return
	}
	timePerQuestion := req.TimePerQuestion
	if timePerQuestion == 0 {
		timePerQuestion = model.DefaultTimePerQuestion
	}

	var test *model.Test
	err := c.Tests.Do(func(svc *service.TestManagementService) error {
		id := ctx.Param("id")
		if err := svc.EditTestSettings(id, title, timePerQuestion); err != nil {
			return err
		}
		t, err := svc.FindTestByID(id)
		if err != nil {
			return err
		}
		test = t.Clone()
		return nil
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, test)
}

// @Summary 删除测试
// @Tags 测试管理
// @Produce json
// @Param id path string true "测试ID"
// @Success 200 {object} util.Response
// @Router /admin/tests/{id} [delete]
func (c *TestController) DeleteTest(ctx *gin.Context) {
	id := ctx.Param("id")
	err := c.Tests.Do(func(svc *service.TestManagementService) error {
		return svc.RemoveTest(id)
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary 获取测试的题目
// @Tags 测试管理
// @Produce json
// @Param id path string true "测试ID"
// @Success 200 {object} util.Response
// @Router /admin/tests/{id}/questions [get]
func (c *TestController) ListQuestions(ctx *gin.Context) {
	var qs []*model.Question
	err := c.Tests.Do(func(svc *service.TestManagementService) error {
		found, err := svc.GetQuestions(ctx.Param("id"))
		if err != nil {
			return err
		}
		qs = cloneQuestions(found)
		return nil
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, qs)
}

// @Summary 添加题目
// @Tags 测试管理
// @Accept json
// @Produce json
// @Param id path string true "测试ID"
// @Param body body QuestionReq true "题目"
// @Success 201 {object} util.Response
// @Router /admin/tests/{id}/questions [post]
func (c *TestController) AddQuestion(ctx *gin.Context) {
	var req QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	text, ok := requireText(ctx, "text", req.Text)
	if !ok {
		return
	}

	var q *model.Question
	err := c.Tests.Do(func(svc *service.TestManagementService) error {
		added, err := svc.AddQuestion(ctx.Param("id"), text)
		if err != nil {
			return err
		}
		q = added.Clone()
		return nil
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// @Summary 修改题目
// @Tags 测试管理
// @Accept json
// @Produce json
// @Param id path string true "测试ID"
// @Param questionId path string true "题目ID"
// @Param body body QuestionReq true "题目"
// @Success 200 {object} util.Response
// @Router /admin/tests/{id}/questions/{questionId} [put]
func (c *TestController) UpdateQuestion(ctx *gin.Context) {
	var req QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	text, ok := requireText(ctx, "text", req.Text)
	if !ok {
		return
	}

	err := c.Tests.Do(func(svc *service.TestManagementService) error {
		return svc.EditQuestion(ctx.Param("id"), ctx.Param("questionId"), text)
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": ctx.Param("questionId"), "text": text})
}

// @Summary 删除题目
// @Tags 测试管理
// @Produce json
// @Param id path string true "测试ID"
// @Param questionId path string true "题目ID"
// @Success 200 {object} util.Response
// @Router /admin/tests/{id}/questions/{questionId} [delete]
func (c *TestController) DeleteQuestion(ctx *gin.Context) {
	err := c.Tests.Do(func(svc *service.TestManagementService) error {
		return svc.RemoveQuestion(ctx.Param("id"), ctx.Param("questionId"))
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": ctx.Param("questionId")})
}

// @Summary 获取题目的选项
// @Tags 测试管理
// @Produce json
// @Param id path string true "测试ID"
// @Param questionId path string true "题目ID"
// @Success 200 {object} util.Response
// @Router /admin/tests/{id}/questions/{questionId}/answers [get]
func (c *TestController) ListAnswers(ctx *gin.Context) {
	var as []*model.Answer
	err := c.Tests.Do(func(svc *service.TestManagementService) error {
		found, err := svc.GetAnswers(ctx.Param("id"), ctx.Param("questionId"))
		if err != nil {
			return err
		}
		as = cloneAnswers(found)
		return nil
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, as)
}

// @Summary 添加选项
// @Tags 测试管理
// @Accept json
// @Produce json
// @Param id path string true "测试ID"
// @Param questionId path string true "题目ID"
// @Param body body AnswerReq true "选项"
// @Success 201 {object} util.Response
// @Router /admin/tests/{id}/questions/{questionId}/answers [post]
func (c *TestController) AddAnswer(ctx *gin.Context) {
	var req AnswerReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	text, ok := requireText(ctx, "text", req.Text)
	if !ok {
		return
	}

	var a *model.Answer
	err := c.Tests.Do(func(svc *service.TestManagementService) error {
		added, err := svc.AddAnswer(ctx.Param("id"), ctx.Param("questionId"), text, req.IsCorrect)
		if err != nil {
			return err
		}
		a = added.Clone()
		return nil
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// @Summary 修改选项
// @Tags 测试管理
// @Accept json
// @Produce json
// @Param id path string true "测试ID"
// @Param questionId path string true "题目ID"
// @Param answerId path string true "选项ID"
// @Param body body AnswerReq true "选项"
// @Success 200 {object} util.Response
// @Router /admin/tests/{id}/questions/{questionId}/answers/{answerId} [put]
func (c *TestController) UpdateAnswer(ctx *gin.Context) {
	var req AnswerReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	text, ok := requireText(ctx, "text", req.Text)
	if !ok {
		return
	}

	err := c.Tests.Do(func(svc *service.TestManagementService) error {
		return svc.EditAnswer(ctx.Param("id"), ctx.Param("questionId"), ctx.Param("answerId"), text, req.IsCorrect)
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": ctx.Param("answerId"), "text": text, "is_correct": req.IsCorrect})
}

// @Summary 删除选项
// @Tags 测试管理
// @Produce json
// @Param id path string true "测试ID"
// @Param questionId path string true "题目ID"
// @Param answerId path string true "选项ID"
// @Success 200 {object} util.Response
// @Router /admin/tests/{id}/questions/{questionId}/answers/{answerId} [delete]
func (c *TestController) DeleteAnswer(ctx *gin.Context) {
	err := c.Tests.Do(func(svc *service.TestManagementService) error {
		return svc.RemoveAnswer(ctx.Param("id"), ctx.Param("questionId"), ctx.Param("answerId"))
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": ctx.Param("answerId")})
}

// @Summary 保存全部修改
// @Description 保存前校验：有选项但没有正确选项的题目会阻止保存
// @Tags 测试管理
// @Produce json
// @Success 200 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /admin/tests/save [post]
func (c *TestController) SaveChanges(ctx *gin.Context) {
	var count int
	err := c.Tests.Do(func(svc *service.TestManagementService) error {
		count = len(svc.GetAllTests())
		return svc.SaveChanges(ctx.Request.Context())
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"saved": count})
}
