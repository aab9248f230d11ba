package grammar

// NonTerminalID identifies a non-terminal of the Red grammar.
type NonTerminalID int

func (id NonTerminalID) Int() int {
	return int(id)
}

const (
	NTPrograma NonTerminalID = iota
	NTDefiniciones
	NTDefMaquinas
	NTDefConcentradores
	NTDefCoaxiales
	NTTipoCoaxial
	NTListaMaquinas
	NTListaMaquinasPrime
	NTListaConcentradores
	NTListaConcentradoresPrime
	NTDeclConcentrador
	NTOpcionCoaxial
	NTListaCoaxiales
	NTListaCoaxialesPrime
	NTDeclCoaxial
	NTModulos
	NTModulo
	NTBloqueInicio
	NTSentencias
	NTSentencia
	NTSentenciaColoca
	NTSentenciaColocaCoaxial
	NTSentenciaColocaCoaxialConcentrador
	NTSentenciaUneMaquinaPuerto
	NTSentenciaAsignaPuerto
	NTSentenciaMaquinaCoaxial
	NTSentenciaAsignaMaquinaCoaxial
	NTSentenciaEscribe
	NTSentenciaSi
	NTOpcionSino
	NTLlamadaModulo
	NTDireccion
	NTExpresion
	NTExpresionOr
	NTExpresionOrPrime
	NTExpresionAnd
	NTExpresionAndPrime
	NTExpresionRelacional
	NTOpRelacional
	NTOperadorRelacional
	NTExpresionNot
	NTExpresionPrimaria
	NTAccesos
	NTAccesoCampo
	NTAccesoArreglo

	nonTerminalCount
)

var nonTerminalNames = [nonTerminalCount]string{
	NTPrograma:                           "Programa",
	NTDefiniciones:                       "Definiciones",
	NTDefMaquinas:                        "DefMaquinas",
	NTDefConcentradores:                  "DefConcentradores",
	NTDefCoaxiales:                       "DefCoaxiales",
	NTTipoCoaxial:                        "TipoCoaxial",
	NTListaMaquinas:                      "ListaMaquinas",
	NTListaMaquinasPrime:                 "ListaMaquinas'",
	NTListaConcentradores:                "ListaConcentradores",
	NTListaConcentradoresPrime:           "ListaConcentradores'",
	NTDeclConcentrador:                   "DeclConcentrador",
	NTOpcionCoaxial:                      "OpcionCoaxial",
	NTListaCoaxiales:                     "ListaCoaxiales",
	NTListaCoaxialesPrime:                "ListaCoaxiales'",
	NTDeclCoaxial:                        "DeclCoaxial",
	NTModulos:                            "Modulos",
	NTModulo:                             "Modulo",
	NTBloqueInicio:                       "BloqueInicio",
	NTSentencias:                         "Sentencias",
	NTSentencia:                          "Sentencia",
	NTSentenciaColoca:                    "SentenciaColoca",
	NTSentenciaColocaCoaxial:             "SentenciaColocaCoaxial",
	NTSentenciaColocaCoaxialConcentrador: "SentenciaColocaCoaxialConcentrador",
	NTSentenciaUneMaquinaPuerto:          "SentenciaUneMaquinaPuerto",
	NTSentenciaAsignaPuerto:              "SentenciaAsignaPuerto",
	NTSentenciaMaquinaCoaxial:            "SentenciaMaquinaCoaxial",
	NTSentenciaAsignaMaquinaCoaxial:      "SentenciaAsignaMaquinaCoaxial",
	NTSentenciaEscribe:                   "SentenciaEscribe",
	NTSentenciaSi:                        "SentenciaSi",
	NTOpcionSino:                         "OpcionSino",
	NTLlamadaModulo:                      "LlamadaModulo",
	NTDireccion:                          "Direccion",
	NTExpresion:                          "Expresion",
	NTExpresionOr:                        "ExpresionOr",
	NTExpresionOrPrime:                   "ExpresionOr'",
	NTExpresionAnd:                       "ExpresionAnd",
	NTExpresionAndPrime:                  "ExpresionAnd'",
	NTExpresionRelacional:                "ExpresionRelacional",
	NTOpRelacional:                       "OpRelacional",
	NTOperadorRelacional:                 "OperadorRelacional",
	NTExpresionNot:                       "ExpresionNot",
	NTExpresionPrimaria:                  "ExpresionPrimaria",
	NTAccesos:                            "Accesos",
	NTAccesoCampo:                        "AccesoCampo",
	NTAccesoArreglo:                      "AccesoArreglo",
}

func (id NonTerminalID) String() string {
	if id < 0 || id >= nonTerminalCount {
		return "unknown"
	}
	return nonTerminalNames[id]
}

// NonTerminals lists every non-terminal in declaration order.
func NonTerminals() []NonTerminalID {
	ids := make([]NonTerminalID, nonTerminalCount)
	for i := range ids {
		ids[i] = NonTerminalID(i)
	}
	return ids
}
