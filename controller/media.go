package controller

import (
	"github.com/gin-gonic/gin"

	"campfire/logic"
	"campfire/pkg/errorx"
)

// maxMediaFiles 单次上传的文件数量上限
const maxMediaFiles = 9

// AttachMediaHandler 为帖子上传媒体附件
// @Summary 上传帖子媒体
// @Description multipart 表单上传，字段名 files，按扩展名自动识别图片/视频
// @Tags 媒体相关
// @Accept multipart/form-data
// @Produce application/json
// @Param Authorization header string true "Bearer 用户令牌"
// @Param id path string true "帖子ID"
// @Param files formData file true "媒体文件"
// @Success 200 {object} ResponseData{data=[]models.PostMedia}
// @Router /post/{id}/media [post]
func AttachMediaHandler(c *gin.Context) {
	userID, err := GetCurrentUser(c)
	if err != nil {
		ResponseError(c, errorx.ErrNeedLogin)
		return
	}

	postID, err := stringToInt64(c.Param("id"))
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		ResponseErrorWithMsg(c, errorx.CodeInvalidParam, "至少上传一个文件")
		return
	}
	if len(files) > maxMediaFiles {
		ResponseErrorWithMsg(c, errorx.CodeInvalidParam, "单次最多上传9个文件")
		return
	}

	media, err := logic.AttachMedia(c.Request.Context(), userID, postID, files)
	if err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, media)
}

// DetachMediaHandler 移除帖子的媒体附件
// @Summary 移除帖子媒体
// @Description 删除媒体记录并异步清理存储文件；媒体不属于该帖子时返回资源不存在
// @Tags 媒体相关
// @Produce application/json
// @Param Authorization header string true "Bearer 用户令牌"
// @Param id path string true "帖子ID"
// @Param media_id path string true "媒体ID"
// @Success 200 {object} ResponseData
// @Router /post/{id}/media/{media_id} [delete]
func DetachMediaHandler(c *gin.Context) {
	userID, err := GetCurrentUser(c)
	if err != nil {
		ResponseError(c, errorx.ErrNeedLogin)
		return
	}

	postID, err := stringToInt64(c.Param("id"))
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}
	mediaID, err := stringToInt64(c.Param("media_id"))
	if err != nil {
		ResponseError(c, errorx.ErrInvalidParam)
		return
	}

	if err := logic.DetachMedia(c.Request.Context(), userID, postID, mediaID); err != nil {
		HandleError(c, err)
		return
	}
	ResponseSuccess(c, nil)
}
