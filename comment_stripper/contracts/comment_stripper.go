package contracts

import "github.com/meysamhadeli/decomment/comment_stripper/models"

type ICommentStripper interface {
	Strip(content string, profile *models.LanguageProfile) (*models.StripResult, error)
}
