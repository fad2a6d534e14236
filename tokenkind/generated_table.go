package tokenkind

// Code generated by codegen/generate.go from codegen/tokenkinds.yaml.
// DO NOT EDIT.

var generatedTable = map[string]Event{
	"tIDENTIFIER": EventIdent,
	"tCONSTANT":   EventIdent,
	"tIVAR":       EventIdent,
	"tGVAR":       EventIdent,
	"tCVAR":       EventIdent,
	"tLABEL":      EventIdent,
	"tFID":        EventIdent,

	"tSTRING_CONTENT": EventStringContent,
	"tXSTRING_CONTENT": EventStringContent,

	"tHEREDOC_BEG": EventHeredocBeg,
	"tHEREDOC_END": EventHeredocEnd,

	"tNL":         EventNewline,
	"tIGNORED_NL": EventIgnoredNewline,
	"tCOMMENT":    EventComment,

	"tEMBEXPR_BEG": EventEmbExprBeg,
	"tEMBEXPR_END": EventEmbExprEnd,

	"tREGEXP_END": EventRegexpEnd,
	"tEOF":        EventEndContent,

	"tPLUS":    EventOperator,
	"tMINUS":   EventOperator,
	"tSTAR":    EventOperator,
	"tSTAR2":   EventOperator,
	"tDIVIDE":  EventOperator,
	"tPERCENT": EventOperator,
	"tUPLUS":   EventOperator,
	"tUMINUS":  EventOperator,
	"tEQ":      EventOperator,
	"tOP_ASGN": EventOperator,
	"tEQQ":     EventOperator,
	"tNEQ":     EventOperator,
	"tLT":      EventOperator,
	"tGT":      EventOperator,
	"tLEQ":     EventOperator,
	"tGEQ":     EventOperator,
	"tCMP":     EventOperator,
	"tANDOP":   EventOperator,
	"tOROP":    EventOperator,
	"tAMPER":   EventOperator,
	"tAMPER2":  EventOperator,
	"tPIPE":    EventOperator,
	"tCARET":   EventOperator,
	"tTILDE":   EventOperator,
	"tBANG":    EventOperator,
	"tLSHFT":   EventOperator,
	"tRSHFT":   EventOperator,
	"tDOT":     EventOperator,
	"tDOT2":    EventOperator,
	"tDOT3":    EventOperator,
	"tCOLON":   EventOperator,
	"tCOLON2":  EventOperator,
	"tCOLON3":  EventOperator,
	"tSEMI":    EventOperator,
	"tCOMMA":   EventOperator,
	"tARROW":   EventOperator,
	"tLABEL_END": EventOperator,
	"tLPAREN":  EventOperator,
	"tRPAREN":  EventOperator,
	"tLBRACE":  EventOperator,
	"tRBRACE":  EventOperator,
	"tLBRACK":  EventOperator,
	"tRBRACK":  EventOperator,
	"tQUESTION": EventOperator,

	"kDEF":      EventKeyword,
	"kEND":      EventKeyword,
	"kIF":       EventKeyword,
	"kUNLESS":   EventKeyword,
	"kELSE":     EventKeyword,
	"kELSIF":    EventKeyword,
	"kWHILE":    EventKeyword,
	"kUNTIL":    EventKeyword,
	"kDO":       EventKeyword,
	"kCLASS":    EventKeyword,
	"kMODULE":   EventKeyword,
	"kRETURN":   EventKeyword,
	"kNIL":      EventKeyword,
	"kTRUE":     EventKeyword,
	"kFALSE":    EventKeyword,
	"kAND":      EventKeyword,
	"kOR":       EventKeyword,
	"kNOT":      EventKeyword,
	"kBEGIN":    EventKeyword,
	"kRESCUE":   EventKeyword,
	"kENSURE":   EventKeyword,
	"kYIELD":    EventKeyword,
	"kSELF":     EventKeyword,
	"kCASE":     EventKeyword,
	"kWHEN":     EventKeyword,
	"kIN":       EventKeyword,
	"kBREAK":    EventKeyword,
	"kNEXT":     EventKeyword,
	"kREDO":     EventKeyword,
	"kRETRY":    EventKeyword,
	"kSUPER":    EventKeyword,
	"kLAMBDA":   EventKeyword,
}

// Default returns the standard upstream-kind-to-event Map shipped with
// this module.
func Default() *Map {
	return New(generatedTable)
}
