package cli

import (
	"fmt"
	"io"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// writeStatement 輸出單一帳戶的對帳單；沒有任何交易時只輸出一行提示
func writeStatement(w io.Writer, symbol string, st domain.Statement) {
	if st.Empty() {
		fmt.Fprintln(w, MsgNoMovements)
		return
	}
	fmt.Fprintln(w, title("STATEMENT"))
	fmt.Fprintln(w, title(fmt.Sprintf("Account %d", st.Account)))
	fmt.Fprintln(w)
	for _, tran := range st.Transactions {
		fmt.Fprintln(w, label(tran.Type.String())+money(symbol, tran.Amount))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, label("Current balance")+money(symbol, st.Balance))
	fmt.Fprintln(w)
	fmt.Fprintln(w, separator())
}
