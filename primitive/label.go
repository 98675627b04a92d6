package primitive

// Short labels identify kinds in record spec files and in conversion error
// messages ("Invalid shedding_score: expected u8").

var kindLabels = map[KindEnum]string{
	KindInt:      "int",
	KindInt8:     "i8",
	KindInt16:    "i16",
	KindInt32:    "i32",
	KindInt64:    "i64",
	KindUint:     "uint",
	KindUint8:    "u8",
	KindUint16:   "u16",
	KindUint32:   "u32",
	KindUint64:   "u64",
	KindFloat32:  "f32",
	KindFloat64:  "f64",
	KindBool:     "bool",
	KindString:   "string",
	KindTime:     "time",
	KindDuration: "duration",
}

var labelKinds map[string]KindEnum

func init() {
	labelKinds = make(map[string]KindEnum, len(kindLabels))
	for kind, label := range kindLabels {
		labelKinds[label] = kind
	}

	// accepted aliases
	labelKinds["text"] = KindString
	labelKinds["str"] = KindString
	labelKinds["float"] = KindFloat64
	labelKinds["boolean"] = KindBool
}

// Label returns the short label of the kind, or empty string for the zero kind.
func (k KindEnum) Label() string {
	return kindLabels[k]
}

// ParseLabel resolves a short label (as used in record spec files) to a kind.
// It returns the zero kind and false for unknown labels.
func ParseLabel(label string) (KindEnum, bool) {
	k, ok := labelKinds[label]
	return k, ok
}
