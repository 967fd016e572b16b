package ioc

import (
	"github.com/spf13/viper"
	"github.com/uy1-mgp/bff/service"
)

func InitEntryValidator() *service.EntryValidator {
	// 为空表示任意正整数学分
	return service.NewEntryValidator(viper.GetIntSlice("mgp.allowedCredits"))
}
