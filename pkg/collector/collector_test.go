package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atani/php-knip/internal/phpast"
)

func symbolNamed(t *testing.T, symbols []phpast.Symbol, name string) phpast.Symbol {
	t.Helper()
	for _, s := range symbols {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("symbol %q not found among %d symbols", name, len(symbols))
	return phpast.Symbol{}
}

func refsOfKind(refs []phpast.Reference, kind phpast.ReferenceKind) []phpast.Reference {
	var out []phpast.Reference
	for _, r := range refs {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

func TestCollectFileClassAndMethod(t *testing.T) {
	src := []byte(`<?php
namespace App;

class Svc
{
    private function helper(): void
    {
    }

    public function __toString(): string
    {
        return "";
    }
}
`)
	res, err := CollectFile("src/Svc.php", src)
	require.NoError(t, err)

	class := symbolNamed(t, res.Symbols, "Svc")
	assert.Equal(t, phpast.KindClass, class.Kind)
	assert.Equal(t, `App\Svc`, class.FQN())

	helper := symbolNamed(t, res.Symbols, "helper")
	assert.Equal(t, phpast.VisibilityPrivate, helper.Visibility)
	assert.Equal(t, `App\Svc`, helper.Parent)

	toString := symbolNamed(t, res.Symbols, "__toString")
	isMagic, _ := toString.Metadata["isMagic"].(bool)
	assert.True(t, isMagic)
}

func TestCollectFileExtendsAndImplements(t *testing.T) {
	src := []byte(`<?php
namespace A;

abstract class Base {}

interface Able {}

class Derived extends Base implements Able {}
`)
	res, err := CollectFile("src/Derived.php", src)
	require.NoError(t, err)

	extendsRefs := refsOfKind(res.References, phpast.RefExtends)
	require.Len(t, extendsRefs, 1)
	assert.Equal(t, `A\Base`, extendsRefs[0].SymbolName)

	implementsRefs := refsOfKind(res.References, phpast.RefImplements)
	require.Len(t, implementsRefs, 1)
	assert.Equal(t, `A\Able`, implementsRefs[0].SymbolName)

	base := symbolNamed(t, res.Symbols, "Base")
	assert.True(t, base.IsAbstract)
}

func TestCollectFileNewAndStaticCallAndAlias(t *testing.T) {
	src := []byte(`<?php
namespace App;

use X\Y\Helper;

class Svc
{
    public function run()
    {
        $h = new Helper();
        Helper::make();
        return $h->go();
    }
}
`)
	res, err := CollectFile("src/Svc.php", src)
	require.NoError(t, err)

	newRefs := refsOfKind(res.References, phpast.RefNew)
	require.Len(t, newRefs, 1)
	assert.Equal(t, `X\Y\Helper`, newRefs[0].SymbolName)

	staticRefs := refsOfKind(res.References, phpast.RefStaticCall)
	require.Len(t, staticRefs, 1)
	assert.Equal(t, `X\Y\Helper`, staticRefs[0].SymbolParent)
	assert.Equal(t, "make", staticRefs[0].SymbolName)

	methodRefs := refsOfKind(res.References, phpast.RefMethodCall)
	require.Len(t, methodRefs, 1)
	assert.Equal(t, "go", methodRefs[0].SymbolName)

	require.Len(t, res.Imports, 1)
	assert.Equal(t, `X\Y\Helper`, res.Imports[0].FQN)
	assert.Equal(t, "Helper", res.Imports[0].Alias)
}

func TestCollectFileDefineConstant(t *testing.T) {
	src := []byte(`<?php
define("MY_CONST", 42);
echo MY_CONST;
`)
	res, err := CollectFile("src/consts.php", src)
	require.NoError(t, err)

	constSym := symbolNamed(t, res.Symbols, "MY_CONST")
	assert.Equal(t, "define", constSym.Metadata["definedWith"])

	constRefs := refsOfKind(res.References, phpast.RefConstant)
	require.Len(t, constRefs, 1)
	assert.Equal(t, "MY_CONST", constRefs[0].SymbolName)
	assert.Empty(t, constRefs[0].SymbolParent)

	// define() itself must not produce a function_call reference.
	assert.Empty(t, refsOfKind(res.References, phpast.RefFunctionCall))
}

func TestCollectFileTypeHintsExcludeBuiltins(t *testing.T) {
	src := []byte(`<?php
namespace App;

class Svc
{
    public function run(int $n, Helper $h): Helper
    {
        return $h;
    }
}
`)
	res, err := CollectFile("src/Svc.php", src)
	require.NoError(t, err)

	hints := refsOfKind(res.References, phpast.RefTypeHint)
	require.Len(t, hints, 1)
	assert.Equal(t, `App\Helper`, hints[0].SymbolName)

	returns := refsOfKind(res.References, phpast.RefReturnType)
	require.Len(t, returns, 1)
	assert.Equal(t, `App\Helper`, returns[0].SymbolName)
}

func TestCollectFileCatch(t *testing.T) {
	src := []byte(`<?php
try {
} catch (\RuntimeException | \LogicException $e) {
}
`)
	res, err := CollectFile("src/run.php", src)
	require.NoError(t, err)

	catches := refsOfKind(res.References, phpast.RefCatch)
	require.Len(t, catches, 2)
	assert.Equal(t, "RuntimeException", catches[0].SymbolName)
	assert.Equal(t, "LogicException", catches[1].SymbolName)
}

func TestCollectFileScopeDoesNotLeakAcrossFiles(t *testing.T) {
	first := []byte(`<?php
namespace First;
class A {}
`)
	second := []byte(`<?php
class B {}
`)
	_, err := CollectFile("first.php", first)
	require.NoError(t, err)

	res, err := CollectFile("second.php", second)
	require.NoError(t, err)

	b := symbolNamed(t, res.Symbols, "B")
	assert.Equal(t, "", b.Namespace)
}
</content>
