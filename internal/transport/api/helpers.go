package api

import (
	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// currentIdentity берет из контекста gin identity текущего юзера. Identity устанавливается в
// middlewares.AuthRequired. Если значения в контексте нет, вернется пустая identity.
func currentIdentity(c *gin.Context) domain.Identity {
	identity, _ := middlewares.CurrentIdentity(c)
	return identity
}

func currentUserID(c *gin.Context) string {
	return currentIdentity(c).UserID
}

type PageParams struct {
	Limit  uint `binding:"omitempty,max=1000" form:"limit"`
	Offset uint `form:"offset"`
}

// bindPage читает limit/offset из query. При ошибке запрос уже прерван.
func bindPage(c *gin.Context) (repoargs.Page, bool) {
	var params PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithBindError(c, err)
		return repoargs.Page{}, false
	}
	return repoargs.Page{Limit: params.Limit, Offset: params.Offset}.Normalize(), true
}
