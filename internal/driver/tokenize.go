package driver

import (
	"recalc/internal/diag"
	"recalc/internal/lexer"
	"recalc/internal/source"
	"recalc/internal/token"
)

// TokenizeResult держит токены одного источника вместе с его FileSet.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize токенизирует файл с диска.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fs.Get(fileID), opts), nil
}

// TokenizeText токенизирует выражение, переданное строкой (флаг -e, тесты).
func TokenizeText(name, text string, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(text))
	return tokenizeFile(fs, fs.Get(fileID), opts)
}

func tokenizeFile(fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	toks := lexer.Tokenize(file, diag.BagReporter{Bag: bag})
	for _, d := range lexer.SuspectSplitIdents(toks) {
		bag.Add(d)
	}
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  toks,
		Bag:     bag,
	}
}
