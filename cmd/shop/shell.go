package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shopstream/internal/domain/model"
	"shopstream/internal/usecase"
	"shopstream/internal/validator"
)

// runShell は画面の代わりの対話ループ。表示と入力解釈だけを持ち、
// 状態は全部usecase側にある。
func runShell(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	session *usecase.SessionUsecase,
	cart *usecase.CartUsecase,
	products *usecase.ProductUsecase,
	orders *usecase.OrderUsecase,
	recommend *usecase.RecommendationUsecase,
) {
	fmt.Fprintln(out, "ShopStream — type 'help' for commands")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "help":
			printHelp(out)

		case "products":
			list, err := products.List(ctx)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			printProducts(out, list)

		case "search":
			query, category := rest, ""
			if before, after, ok := strings.Cut(rest, " in:"); ok {
				query, category = strings.TrimSpace(before), strings.TrimSpace(after)
			}
			list, err := products.Search(ctx, query, category)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			printProducts(out, list)

		case "categories":
			list, err := products.Categories(ctx)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			for _, c := range list {
				fmt.Fprintln(out, "-", c)
			}

		case "add":
			id, qtyRaw, _ := strings.Cut(rest, " ")
			p, err := products.Get(ctx, id)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			// 数量は自由入力。変な値は1に倒す。
			if err := cart.AddToCart(ctx, p, validator.ParseQuantity(qtyRaw)); err != nil {
				fmt.Fprintln(out, "error:", err)
			}

		case "remove":
			cart.RemoveFromCart(ctx, rest)

		case "qty":
			// addと違ってここは0や負も通す。0以下は削除の意味になる。
			id, qtyRaw, _ := strings.Cut(rest, " ")
			n, err := strconv.ParseInt(strings.TrimSpace(qtyRaw), 10, 64)
			if err != nil {
				fmt.Fprintln(out, "error: quantity must be a whole number")
				continue
			}
			cart.UpdateQuantity(ctx, id, n)

		case "cart":
			for _, it := range cart.Items() {
				fmt.Fprintf(out, "%s  x%d  $%.2f\n", it.Name, it.Quantity, it.Price*float64(it.Quantity))
			}
			fmt.Fprintf(out, "items: %d  total: $%.2f\n", cart.GetItemCount(), cart.GetCartTotal())

		case "clear":
			cart.ClearCart(ctx)

		case "login":
			email, password, _ := strings.Cut(rest, " ")
			err := session.Login(ctx, email, password)
			switch {
			case errors.Is(err, usecase.ErrInvalidCredentials):
				fmt.Fprintln(out, "Invalid email or password. Please try again.")
			case err != nil:
				fmt.Fprintln(out, "error:", err)
			default:
				fmt.Fprintln(out, "Logged in as", email)
			}

		case "logout":
			if err := session.Logout(ctx); err != nil {
				fmt.Fprintln(out, "error:", err)
			}

		case "whoami":
			if user := session.CurrentUser(); user != nil {
				fmt.Fprintf(out, "%s <%s>\n", user.Name, user.Email)
			} else {
				fmt.Fprintln(out, "not logged in")
			}

		case "order":
			summary, err := orders.Summary(ctx)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			for _, it := range summary.Items {
				fmt.Fprintf(out, "%s  x%d  $%.2f\n", it.Name, it.Quantity, it.Price*float64(it.Quantity))
			}
			fmt.Fprintf(out, "total: $%.2f  for %s\n", summary.Total, summary.User.Email)

		case "confirm":
			if err := orders.Confirm(ctx); err != nil {
				fmt.Fprintln(out, "error:", err)
			}

		case "recommend":
			if recommend == nil {
				fmt.Fprintln(out, "recommendations are not configured (set GEMINI_API_KEY)")
				continue
			}
			text, err := recommend.Get(ctx, rest)
			if err != nil {
				if errors.Is(err, usecase.ErrRecommendationUnavailable) {
					fmt.Fprintln(out, usecase.RecommendationRetryMessage)
				} else {
					fmt.Fprintln(out, "error:", err)
				}
				continue
			}
			fmt.Fprintln(out, text)

		case "quit", "exit":
			return

		default:
			fmt.Fprintln(out, "unknown command:", cmd)
		}
	}
}

func printProducts(out io.Writer, list []model.Product) {
	for _, p := range list {
		fmt.Fprintf(out, "[%s] %s  $%.2f  (%s)\n    %s\n", p.ID, p.Name, p.Price, p.Category, p.Description)
	}
	if len(list) == 0 {
		fmt.Fprintln(out, "no products found")
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, `commands:
  products                 list the catalog
  search <q> [in:<cat>]    search by text, optionally in one category
  categories               list categories
  add <id> [qty]           add a product to the cart
  remove <id>              remove a product from the cart
  qty <id> <n>             set a line quantity (0 removes)
  cart                     show cart lines and totals
  clear                    empty the cart
  login <email> <pass>     sign in
  logout                   sign out
  whoami                   show the signed-in user
  order                    show the order summary
  confirm                  confirm the order
  recommend <interests>    ask for product recommendations
  quit`)
}
