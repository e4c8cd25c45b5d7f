package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ptBR holds the Brazilian Portuguese form of every en-US source string.
var ptBR = map[string]string{
	// Parser
	"no instructions loaded":            "nenhuma instrução carregada",
	"instruction invalid":               "instrução inválida",
	"label missing":                     "rótulo ausente",
	"label invalid":                     "rótulo inválido",
	"':' missing after label":           "':' ausente após o rótulo",
	"register missing":                  "registrador ausente",
	"va_para missing":                   "va_para ausente",
	"target missing":                    "destino ausente",
	"entao missing":                     "entao ausente",
	"senao missing":                     "senao ausente",
	"file '%v' not found":               "arquivo '%v' não encontrado",
	"unknown instruction at label %d":   "instrução desconhecida na linha %d",
	"'%v' is not a label":               "'%v' não é um rótulo",
	"unexpected '%v' after instruction": "'%v' inesperado após a instrução",
	"line %d '%v' %v":                   "linha %d '%v' %v",

	// Registers
	"unknown register '%v', ignored":              "registrador desconhecido '%v', ignorando",
	"invalid value '%v' for register %v, using 0": "valor inválido '%v' para o registrador %v, usando 0",

	// Register files
	"expected NAME=VALUE":          "esperado NOME=VALOR",
	"unknown register file format": "formato de arquivo de registradores desconhecido",
	"%v: %v":                       "%v: %v",

	// Trace
	"Line:":                          "Linha:",
	"Instruction:":                   "Instrução:",
	"END":                            "FIM",
	"M (data entry)":                 "M (Entrada de Dados)",
	"HALT (jump to missing line %d)": "HALT (Desvio para linha inexistente: %d)",
	"Execution finished.":            "Execução encerrada.",
	"Final register state":           "Estado final dos registradores",
	"Register":                       "Registrador",
	"Value":                          "Valor",
}

func init() {
	for key, text := range ptBR {
		_ = message.SetString(language.AmericanEnglish, key, key)
		_ = message.SetString(language.BrazilianPortuguese, key, text)
	}
}
