package grammar

import (
	"github.com/rednet-lang/rednet/driver/lexer"
)

// Productions returns the 84 productions of the Red grammar. The numbering
// is fixed; table entries and diagnostics refer to it.
func Productions() *ProductionSet {
	s := newProductionSet()

	// Programa → programa identificador ; Definiciones Modulos BloqueInicio .
	s.append(1, NTPrograma,
		T(lexer.TokenPrograma),
		T(lexer.TokenIdentifier),
		T(lexer.TokenSemicolon),
		N(NTDefiniciones),
		N(NTModulos),
		N(NTBloqueInicio),
		T(lexer.TokenDot),
	)

	// Definiciones → DefMaquinas DefConcentradores DefCoaxiales | ε
	s.append(2, NTDefiniciones,
		N(NTDefMaquinas),
		N(NTDefConcentradores),
		N(NTDefCoaxiales),
	)
	s.append(3, NTDefiniciones, Epsilon)

	// DefMaquinas → define maquinas ListaMaquinas ; | ε
	s.append(4, NTDefMaquinas,
		T(lexer.TokenDefine),
		T(lexer.TokenMaquinas),
		N(NTListaMaquinas),
		T(lexer.TokenSemicolon),
	)
	s.append(5, NTDefMaquinas, Epsilon)

	// DefConcentradores → define concentradores ListaConcentradores ; | ε
	s.append(6, NTDefConcentradores,
		T(lexer.TokenDefine),
		T(lexer.TokenConcentradores),
		N(NTListaConcentradores),
		T(lexer.TokenSemicolon),
	)
	s.append(7, NTDefConcentradores, Epsilon)

	// DefCoaxiales → define TipoCoaxial ListaCoaxiales ; | ε
	s.append(8, NTDefCoaxiales,
		T(lexer.TokenDefine),
		N(NTTipoCoaxial),
		N(NTListaCoaxiales),
		T(lexer.TokenSemicolon),
	)
	s.append(9, NTDefCoaxiales, Epsilon)

	// TipoCoaxial → coaxial | segmento
	s.append(10, NTTipoCoaxial, T(lexer.TokenCoaxial))
	s.append(11, NTTipoCoaxial, T(lexer.TokenSegmento))

	// ListaMaquinas → identificador ListaMaquinas'
	s.append(12, NTListaMaquinas,
		T(lexer.TokenIdentifier),
		N(NTListaMaquinasPrime),
	)
	s.append(13, NTListaMaquinasPrime,
		T(lexer.TokenComma),
		T(lexer.TokenIdentifier),
		N(NTListaMaquinasPrime),
	)
	s.append(14, NTListaMaquinasPrime, Epsilon)

	// ListaConcentradores → DeclConcentrador ListaConcentradores'
	s.append(15, NTListaConcentradores,
		N(NTDeclConcentrador),
		N(NTListaConcentradoresPrime),
	)
	s.append(16, NTListaConcentradoresPrime,
		T(lexer.TokenComma),
		N(NTDeclConcentrador),
		N(NTListaConcentradoresPrime),
	)
	s.append(17, NTListaConcentradoresPrime, Epsilon)

	// DeclConcentrador → identificador = número OpcionCoaxial
	s.append(18, NTDeclConcentrador,
		T(lexer.TokenIdentifier),
		T(lexer.TokenEqual),
		T(lexer.TokenNumber),
		N(NTOpcionCoaxial),
	)

	// OpcionCoaxial → . número | ε
	s.append(19, NTOpcionCoaxial,
		T(lexer.TokenDot),
		T(lexer.TokenNumber),
	)
	s.append(20, NTOpcionCoaxial, Epsilon)

	// ListaCoaxiales → DeclCoaxial ListaCoaxiales'
	s.append(21, NTListaCoaxiales,
		N(NTDeclCoaxial),
		N(NTListaCoaxialesPrime),
	)
	s.append(22, NTListaCoaxialesPrime,
		T(lexer.TokenComma),
		N(NTDeclCoaxial),
		N(NTListaCoaxialesPrime),
	)
	s.append(23, NTListaCoaxialesPrime, Epsilon)

	// DeclCoaxial → identificador = número
	s.append(24, NTDeclCoaxial,
		T(lexer.TokenIdentifier),
		T(lexer.TokenEqual),
		T(lexer.TokenNumber),
	)

	// Modulos → Modulo Modulos | ε
	s.append(25, NTModulos,
		N(NTModulo),
		N(NTModulos),
	)
	s.append(26, NTModulos, Epsilon)

	// Modulo → modulo identificador ; BloqueInicio
	s.append(27, NTModulo,
		T(lexer.TokenModulo),
		T(lexer.TokenIdentifier),
		T(lexer.TokenSemicolon),
		N(NTBloqueInicio),
	)

	// BloqueInicio → inicio Sentencias fin
	s.append(28, NTBloqueInicio,
		T(lexer.TokenInicio),
		N(NTSentencias),
		T(lexer.TokenFin),
	)

	// Sentencias → Sentencia Sentencias | ε
	s.append(29, NTSentencias,
		N(NTSentencia),
		N(NTSentencias),
	)
	s.append(30, NTSentencias, Epsilon)

	// Sentencia → each statement form
	s.append(31, NTSentencia, N(NTSentenciaColoca))
	s.append(32, NTSentencia, N(NTSentenciaColocaCoaxial))
	s.append(33, NTSentencia, N(NTSentenciaColocaCoaxialConcentrador))
	s.append(34, NTSentencia, N(NTSentenciaUneMaquinaPuerto))
	s.append(35, NTSentencia, N(NTSentenciaAsignaPuerto))
	s.append(36, NTSentencia, N(NTSentenciaMaquinaCoaxial))
	s.append(37, NTSentencia, N(NTSentenciaAsignaMaquinaCoaxial))
	s.append(38, NTSentencia, N(NTSentenciaEscribe))
	s.append(39, NTSentencia, N(NTSentenciaSi))
	s.append(40, NTSentencia, N(NTLlamadaModulo))

	// SentenciaColoca → coloca ( identificador , Expresion , Expresion ) ;
	s.append(41, NTSentenciaColoca,
		T(lexer.TokenColoca),
		T(lexer.TokenLParen),
		T(lexer.TokenIdentifier),
		T(lexer.TokenComma),
		N(NTExpresion),
		T(lexer.TokenComma),
		N(NTExpresion),
		T(lexer.TokenRParen),
		T(lexer.TokenSemicolon),
	)

	// SentenciaColocaCoaxial → colocaCoaxial ( identificador , Expresion , Expresion , Direccion ) ;
	s.append(42, NTSentenciaColocaCoaxial,
		T(lexer.TokenColocaCoaxial),
		T(lexer.TokenLParen),
		T(lexer.TokenIdentifier),
		T(lexer.TokenComma),
		N(NTExpresion),
		T(lexer.TokenComma),
		N(NTExpresion),
		T(lexer.TokenComma),
		N(NTDireccion),
		T(lexer.TokenRParen),
		T(lexer.TokenSemicolon),
	)

	// SentenciaColocaCoaxialConcentrador → colocaCoaxialConcentrador ( identificador , identificador ) ;
	s.append(43, NTSentenciaColocaCoaxialConcentrador,
		T(lexer.TokenColocaCoaxialConcentrador),
		T(lexer.TokenLParen),
		T(lexer.TokenIdentifier),
		T(lexer.TokenComma),
		T(lexer.TokenIdentifier),
		T(lexer.TokenRParen),
		T(lexer.TokenSemicolon),
	)

	// SentenciaUneMaquinaPuerto → uneMaquinaPuerto ( identificador , identificador , Expresion ) ;
	s.append(44, NTSentenciaUneMaquinaPuerto,
		T(lexer.TokenUneMaquinaPuerto),
		T(lexer.TokenLParen),
		T(lexer.TokenIdentifier),
		T(lexer.TokenComma),
		T(lexer.TokenIdentifier),
		T(lexer.TokenComma),
		N(NTExpresion),
		T(lexer.TokenRParen),
		T(lexer.TokenSemicolon),
	)

	// SentenciaAsignaPuerto → asignaPuerto ( identificador , identificador ) ;
	s.append(45, NTSentenciaAsignaPuerto,
		T(lexer.TokenAsignaPuerto),
		T(lexer.TokenLParen),
		T(lexer.TokenIdentifier),
		T(lexer.TokenComma),
		T(lexer.TokenIdentifier),
		T(lexer.TokenRParen),
		T(lexer.TokenSemicolon),
	)

	// SentenciaMaquinaCoaxial → maquinaCoaxial ( identificador , identificador , Expresion ) ;
	s.append(46, NTSentenciaMaquinaCoaxial,
		T(lexer.TokenMaquinaCoaxial),
		T(lexer.TokenLParen),
		T(lexer.TokenIdentifier),
		T(lexer.TokenComma),
		T(lexer.TokenIdentifier),
		T(lexer.TokenComma),
		N(NTExpresion),
		T(lexer.TokenRParen),
		T(lexer.TokenSemicolon),
	)

	// SentenciaAsignaMaquinaCoaxial → asignaMaquinaCoaxial ( identificador , identificador ) ;
	s.append(47, NTSentenciaAsignaMaquinaCoaxial,
		T(lexer.TokenAsignaMaquinaCoaxial),
		T(lexer.TokenLParen),
		T(lexer.TokenIdentifier),
		T(lexer.TokenComma),
		T(lexer.TokenIdentifier),
		T(lexer.TokenRParen),
		T(lexer.TokenSemicolon),
	)

	// SentenciaEscribe → escribe ( Expresion ) ;
	s.append(48, NTSentenciaEscribe,
		T(lexer.TokenEscribe),
		T(lexer.TokenLParen),
		N(NTExpresion),
		T(lexer.TokenRParen),
		T(lexer.TokenSemicolon),
	)

	// SentenciaSi → si Expresion inicio Sentencias fin OpcionSino
	s.append(49, NTSentenciaSi,
		T(lexer.TokenSi),
		N(NTExpresion),
		T(lexer.TokenInicio),
		N(NTSentencias),
		T(lexer.TokenFin),
		N(NTOpcionSino),
	)

	// OpcionSino → sino inicio Sentencias fin | ε
	s.append(50, NTOpcionSino,
		T(lexer.TokenSino),
		T(lexer.TokenInicio),
		N(NTSentencias),
		T(lexer.TokenFin),
	)
	s.append(51, NTOpcionSino, Epsilon)

	// LlamadaModulo → identificador ;
	s.append(52, NTLlamadaModulo,
		T(lexer.TokenIdentifier),
		T(lexer.TokenSemicolon),
	)

	// Direccion → arriba | abajo | izquierda | derecha
	s.append(53, NTDireccion, T(lexer.TokenArriba))
	s.append(54, NTDireccion, T(lexer.TokenAbajo))
	s.append(55, NTDireccion, T(lexer.TokenIzquierda))
	s.append(56, NTDireccion, T(lexer.TokenDerecha))

	// Expresion → ExpresionOr
	s.append(57, NTExpresion, N(NTExpresionOr))

	// ExpresionOr → ExpresionAnd ExpresionOr'
	s.append(58, NTExpresionOr,
		N(NTExpresionAnd),
		N(NTExpresionOrPrime),
	)
	s.append(59, NTExpresionOrPrime,
		T(lexer.TokenOr),
		N(NTExpresionAnd),
		N(NTExpresionOrPrime),
	)
	s.append(60, NTExpresionOrPrime, Epsilon)

	// ExpresionAnd → ExpresionRelacional ExpresionAnd'
	s.append(61, NTExpresionAnd,
		N(NTExpresionRelacional),
		N(NTExpresionAndPrime),
	)
	s.append(62, NTExpresionAndPrime,
		T(lexer.TokenAnd),
		N(NTExpresionRelacional),
		N(NTExpresionAndPrime),
	)
	s.append(63, NTExpresionAndPrime, Epsilon)

	// ExpresionRelacional → ExpresionNot OpRelacional
	s.append(64, NTExpresionRelacional,
		N(NTExpresionNot),
		N(NTOpRelacional),
	)
	s.append(65, NTOpRelacional,
		N(NTOperadorRelacional),
		N(NTExpresionNot),
	)
	s.append(66, NTOpRelacional, Epsilon)

	// OperadorRelacional → = | <> | < | > | <= | >=
	s.append(67, NTOperadorRelacional, T(lexer.TokenEqual))
	s.append(68, NTOperadorRelacional, T(lexer.TokenNotEqual))
	s.append(69, NTOperadorRelacional, T(lexer.TokenLess))
	s.append(70, NTOperadorRelacional, T(lexer.TokenGreater))
	s.append(71, NTOperadorRelacional, T(lexer.TokenLessEqual))
	s.append(72, NTOperadorRelacional, T(lexer.TokenGreaterEqual))

	// ExpresionNot → ! ExpresionNot | ExpresionPrimaria
	s.append(73, NTExpresionNot,
		T(lexer.TokenNot),
		N(NTExpresionNot),
	)
	s.append(74, NTExpresionNot, N(NTExpresionPrimaria))

	// ExpresionPrimaria → número | cadena | identificador Accesos | ( Expresion )
	s.append(75, NTExpresionPrimaria, T(lexer.TokenNumber))
	s.append(76, NTExpresionPrimaria, T(lexer.TokenString))
	s.append(77, NTExpresionPrimaria,
		T(lexer.TokenIdentifier),
		N(NTAccesos),
	)
	s.append(78, NTExpresionPrimaria,
		T(lexer.TokenLParen),
		N(NTExpresion),
		T(lexer.TokenRParen),
	)

	// Accesos → AccesoCampo | AccesoArreglo | ε
	s.append(79, NTAccesos, N(NTAccesoCampo))
	s.append(80, NTAccesos, N(NTAccesoArreglo))
	s.append(81, NTAccesos, Epsilon)

	// AccesoCampo → . identificador AccesoArreglo
	s.append(82, NTAccesoCampo,
		T(lexer.TokenDot),
		T(lexer.TokenIdentifier),
		N(NTAccesoArreglo),
	)

	// AccesoArreglo → [ Expresion ] | ε
	s.append(83, NTAccesoArreglo,
		T(lexer.TokenLBracket),
		N(NTExpresion),
		T(lexer.TokenRBracket),
	)
	s.append(84, NTAccesoArreglo, Epsilon)

	return s
}
