package i18n

// Codes must match internal/platform/errors/codes.go; duplicated as strings to
// avoid an import cycle.
var enUS = map[Code]string{
	"UNKNOWN":                   "Something went wrong.",
	"UNAUTHENTICATED":           "Not authenticated",
	"VALIDATION_FAILED":         "Missing required fields",
	"INTERNAL":                  "Internal error",
	"NOT_FOUND":                 "Game not found",
	"GAME_CONCURRENT_UPDATE":    "The game changed while your move was processed. Reload and try again.",
	"GAME_PLAYER_NAME_EMPTY":    "Player name is required",
	"GAME_SCENARIO_UNKNOWN":     "Unknown scenario {{.Scenario}}{{if .Suggestion}}; did you mean {{.Suggestion}}?{{end}}",
	"GAME_SCENARIO_UNAVAILABLE": "Scenario {{.Scenario}} is not available yet",
	"ATTRIBUTE_OUT_OF_RANGE":    "{{.Attribute}} must be between {{.Min}} and {{.Max}}",
	"POSITION_OUT_OF_RANGE":     "Coordinates are out of range",
	"GAME_ALREADY_ENDED":        "Game already ended",
	"DISTANCE_EXCEEDED":         "Distance exceeds daily limit",
	"TURN_ACTION_INVALID":       "Action must be move or loot",
}

var ptBR = map[Code]string{
	"UNKNOWN":                   "Algo deu errado.",
	"UNAUTHENTICATED":           "Não autenticado",
	"VALIDATION_FAILED":         "Campos obrigatórios ausentes",
	"INTERNAL":                  "Erro interno",
	"NOT_FOUND":                 "Jogo não encontrado",
	"GAME_CONCURRENT_UPDATE":    "O jogo mudou enquanto seu movimento era processado. Recarregue e tente de novo.",
	"GAME_PLAYER_NAME_EMPTY":    "O nome do jogador é obrigatório",
	"GAME_SCENARIO_UNKNOWN":     "Cenário desconhecido {{.Scenario}}{{if .Suggestion}}; você quis dizer {{.Suggestion}}?{{end}}",
	"GAME_SCENARIO_UNAVAILABLE": "O cenário {{.Scenario}} ainda não está disponível",
	"ATTRIBUTE_OUT_OF_RANGE":    "{{.Attribute}} deve estar entre {{.Min}} e {{.Max}}",
	"POSITION_OUT_OF_RANGE":     "Coordenadas fora do intervalo",
	"GAME_ALREADY_ENDED":        "O jogo já terminou",
	"DISTANCE_EXCEEDED":         "A distância excede o limite diário",
	"TURN_ACTION_INVALID":       "A ação deve ser move ou loot",
}
