package validator

import "github.com/go-playground/validator/v10"

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("sentido", validateSentido)
	validate.RegisterValidation("importancia", validateImportancia)
	validate.RegisterValidation("tipo_obstruccion", validateTipoObstruccion)
	validate.RegisterValidation("porcentaje", validatePorcentaje)
}

func validateSentido(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "NORTE", "SUR", "ORIENTE", "OCCIDENTE", "AMBOS":
		return true
	}
	return false
}

func validateImportancia(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "BAJA", "NORMAL", "ALTA", "CRITICA":
		return true
	}
	return false
}

func validateTipoObstruccion(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "ninguna", "parcial", "total_sentido", "total_ambos":
		return true
	}
	return false
}

func validatePorcentaje(fl validator.FieldLevel) bool {
	p := fl.Field().Int()
	return p >= 0 && p <= 100
}
