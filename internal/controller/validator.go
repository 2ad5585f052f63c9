package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
)

var registerOnce sync.Once

// RegisterValidators 向gin的校验器注册自定义规则
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin校验器不是 validator/v10")
			return
		}
		// 使用json标签作为字段名，错误信息与请求体字段一致
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err = v.RegisterValidation("notblank", notBlank)
	})
	return err
}

// notBlank 字符串去除首尾空白后不能为空
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// bindError 将绑定或校验错误转换为400错误
func bindError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return errs.Validation(fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag())).WithCause(err)
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return errs.Validation("malformed JSON body").WithCause(err)
	}
	return errs.Validation("invalid request").WithCause(err)
}
