package test_test

import (
	"fmt"
	"os"
	"sync"

	"github.com/loopcontext/msgtree"
	"github.com/loopcontext/msgtree/test"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func loadResources() map[string]msgtree.Tree {
	trees, err := msgtree.LoadFS(os.DirFS("./resources"), "messages")
	Expect(err).NotTo(HaveOccurred())
	return trees
}

var _ = Describe("Resolver", func() {
	var trees map[string]msgtree.Tree
	var observer *test.RecordingObserver
	var resolver *msgtree.Resolver

	BeforeEach(func() {
		trees = loadResources()
		observer = &test.RecordingObserver{}
		resolver = msgtree.New(msgtree.Config{DisableLogging: true, Observer: observer})
	})

	It("should load every message file", func() {
		Expect(trees).To(HaveLen(4))
		Expect(trees).To(HaveKey("en"))
		Expect(trees).To(HaveKey("fr"))
		Expect(trees).To(HaveKey("ru"))
		Expect(trees).To(HaveKey("ar"))
	})

	suites, suitesErr := test.LoadSuites("./resources/cases.yaml")

	It("should read the resolution cases", func() {
		Expect(suitesErr).NotTo(HaveOccurred())
		Expect(suites).NotTo(BeEmpty())
	})

	for _, suite := range suites {
		suite := suite
		Context(fmt.Sprintf("with locale %s", suite.Locale), func() {
			BeforeEach(func() {
				resolver.SetMessages(trees[suite.Locale], suite.Locale)
			})

			for _, c := range suite.Cases {
				c := c
				It(fmt.Sprintf("should resolve %s", c), func() {
					Expect(c.Run(resolver)).To(Equal(c.Want))
				})
			}
		})
	}

	Context("diagnostics", func() {
		BeforeEach(func() {
			resolver.SetMessages(trees["en"], "en")
		})

		It("should report missing keys to the observer and the stats", func() {
			Expect(resolver.Translate("nope")).To(Equal("nope"))

			missing, _, _ := observer.Snapshot()
			Expect(missing).To(ConsistOf("en:nope"))
			Expect(resolver.SnapshotStats().MissingKeys).To(HaveKeyWithValue("en:nope", 1))
		})

		It("should report links to sub-trees and unknown modifiers", func() {
			resolver.Translate("love4", msgtree.Options{Args: []interface{}{"x"}})
			resolver.Translate("love5", msgtree.Options{Args: []interface{}{"x"}})

			_, mismatches, modifiers := observer.Snapshot()
			Expect(mismatches).To(ConsistOf("en:common"))
			Expect(modifiers).To(ConsistOf("en:neant"))
		})

		It("should reset stats", func() {
			resolver.Translate("nope")
			resolver.ResetStats()
			Expect(resolver.SnapshotStats().MissingKeys).To(BeEmpty())
		})
	})

	Context("custom configuration", func() {
		It("should use custom modifiers and number formatters", func() {
			custom := msgtree.New(msgtree.Config{
				DisableLogging: true,
				Modifiers: map[string]msgtree.Modifier{
					"quote": func(s string) string { return "«" + s + "»" },
				},
				NumberFormatter: msgtree.LocaleNumberFormatter("de"),
			})
			custom.SetMessages(msgtree.Tree{
				"common": msgtree.Tree{"ja": msgtree.Leaf("ja")},
				"answer": msgtree.Leaf("Antwort: @.quote:common.ja"),
				"total":  msgtree.Tree{"other": msgtree.Leaf("{} Euro")},
			}, "de")

			Expect(custom.Translate("answer")).To(Equal("Antwort: «ja»"))
			Expect(custom.Pluralize("total", 1234.5)).To(Equal("1.234,5 Euro"))
		})

		It("should prefer the plural classifier over the locale", func() {
			custom := msgtree.New(msgtree.Config{
				DisableLogging: true,
				PluralClassifier: func(float64) msgtree.PluralCategory {
					return msgtree.PluralMany
				},
			})
			custom.SetMessages(trees["en"], "en")

			Expect(custom.Pluralize("money", 7)).To(Equal("You have many 7 dollars"))
			Expect(custom.Pluralize("money", 1)).To(Equal("You have 1 dollar"))
		})
	})

	It("should be safe for concurrent reads while messages are replaced", func() {
		resolver.SetMessages(trees["en"], "en")
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				for j := 0; j < 200; j++ {
					if i == 0 && j%20 == 0 {
						resolver.SetMessages(trees["en"], "en")
					}
					Expect(resolver.Translate("welcome")).To(Equal("Hello world"))
				}
			}(i)
		}
		wg.Wait()
	})
})

var _ = Describe("Plural categories", func() {
	table.DescribeTable("locale rules",
		func(locale string, value float64, want msgtree.PluralCategory) {
			resolver := msgtree.New(msgtree.Config{DisableLogging: true})
			resolver.SetMessages(nil, locale)
			Expect(resolver.PluralCategory(value)).To(Equal(want))
		},
		table.Entry("forced zero", "en", 0.0, msgtree.PluralZero),
		table.Entry("forced one", "ja", 1.0, msgtree.PluralOne),
		table.Entry("forced two", "en", 2.0, msgtree.PluralTwo),
		table.Entry("english other", "en", 5.0, msgtree.PluralOther),
		table.Entry("french one", "fr", 1.4, msgtree.PluralOne),
		table.Entry("russian few", "ru", 23.0, msgtree.PluralFew),
		table.Entry("polish many", "pl", 25.0, msgtree.PluralMany),
		table.Entry("arabic few", "ar", 103.0, msgtree.PluralFew),
		table.Entry("welsh many", "cy", 6.0, msgtree.PluralMany),
		table.Entry("serbian latin", "sr-Latn", 22.0, msgtree.PluralFew),
		table.Entry("spanish region", "es-419", 5.0, msgtree.PluralOther),
		table.Entry("no locale", "", 5.0, msgtree.PluralOther),
		table.Entry("unknown locale", "tlh", 5.0, msgtree.PluralOther),
	)
})
