package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"campfire/dao/mysql"
	"campfire/dao/redis"
	"campfire/models"
	"campfire/pkg/errorx"
)

// setupVoteRouter 组装一个只挂投票路由的测试引擎
// asUser 非 0 时模拟认证中间件写入的用户ID
func setupVoteRouter(t *testing.T, asUser int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, InitTrans("zh"))

	d, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, d.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))
	mysql.SetDB(d)

	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	require.NoError(t, d.Create(&models.Post{ID: 200, AuthorID: 1, Title: "t", Content: "c"}).Error)

	r := gin.New()
	r.POST("/api/v1/vote", func(c *gin.Context) {
		if asUser != 0 {
			c.Set(CtxUserIDKey, asUser)
		}
		VoteHandler(c)
	})
	return r
}

func doVote(t *testing.T, r *gin.Engine, body string) *ResponseData {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	resp := new(ResponseData)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), resp))
	return resp
}

func TestVoteHandler(t *testing.T) {
	r := setupVoteRouter(t, 1)

	resp := doVote(t, r, `{"target_id":"200","target_type":"post","direction":1}`)
	assert.Equal(t, CodeSuccess, resp.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["score"])
	assert.Equal(t, float64(1), data["vote"])
}

// direction=0 是合法取值（取消投票），参数校验不能拦
func TestVoteHandlerZeroDirection(t *testing.T) {
	r := setupVoteRouter(t, 1)

	resp := doVote(t, r, `{"target_id":"200","target_type":"post","direction":0}`)
	assert.Equal(t, CodeSuccess, resp.Code)
}

func TestVoteHandlerInvalidParams(t *testing.T) {
	r := setupVoteRouter(t, 1)

	// direction 超出取值范围
	resp := doVote(t, r, `{"target_id":"200","target_type":"post","direction":5}`)
	assert.Equal(t, errorx.CodeInvalidParam, resp.Code)

	// target_type 非法
	resp = doVote(t, r, `{"target_id":"200","target_type":"user","direction":1}`)
	assert.Equal(t, errorx.CodeInvalidParam, resp.Code)
}

func TestVoteHandlerNeedLogin(t *testing.T) {
	r := setupVoteRouter(t, 0)

	resp := doVote(t, r, `{"target_id":"200","target_type":"post","direction":1}`)
	assert.Equal(t, errorx.CodeNeedLogin, resp.Code)
}

func TestVoteHandlerTargetNotFound(t *testing.T) {
	r := setupVoteRouter(t, 1)

	resp := doVote(t, r, `{"target_id":"404","target_type":"post","direction":1}`)
	assert.Equal(t, errorx.CodeNotFound, resp.Code)
}
